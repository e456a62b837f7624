package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password must be at least 6 characters with upper, lower and digit")
	ErrUserNotFound       = errors.New("user not found")
)
