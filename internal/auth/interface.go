package auth

import "context"

// UseCase defines the business logic interface for the auth domain.
type UseCase interface {
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	// ChangePassword verifies the old password and stores a new hash.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	// Profile returns the account for the given user ID.
	Profile(ctx context.Context, userID string) (ProfileOutput, error)
	// EnsureDefaultUser creates the bootstrap account when no users exist.
	EnsureDefaultUser(ctx context.Context, username, password string) error
}
