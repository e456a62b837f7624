package repository

import (
	"context"

	"cicd-telegram-notifier/internal/model"
)

// Repository is the data-store interface for the auth domain.
type Repository interface {
	// GetUser returns the zero-value User (ID == "") when no user matches —
	// not an error.
	GetUser(ctx context.Context, opt GetUserOptions) (model.User, error)
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	CountUsers(ctx context.Context) (int, error)
}
