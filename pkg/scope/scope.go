package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Payload is the identity carried inside an access token.
type Payload struct {
	UserID   string
	Username string
}

// Manager issues and verifies signed access tokens.
type Manager interface {
	Generate(payload Payload) (string, error)
	Verify(token string) (Payload, error)
}

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type implManager struct {
	secret []byte
	expiry time.Duration
}

// New creates a token manager signing HS256 tokens with the given secret.
// The caller is responsible for providing a sane expiry.
func New(secret string, expiry time.Duration) Manager {
	return &implManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (m *implManager) Generate(payload Payload) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: payload.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	})
	return token.SignedString(m.secret)
}

func (m *implManager) Verify(tokenString string) (Payload, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Payload{}, ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !ok || c.Subject == "" {
		return Payload{}, ErrInvalidToken
	}
	return Payload{
		UserID:   c.Subject,
		Username: c.Username,
	}, nil
}
