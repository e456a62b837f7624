package subscription

import (
	"context"

	"cicd-telegram-notifier/internal/model"
)

// UseCase defines the business logic interface for the subscription domain.
type UseCase interface {
	// Register upserts a (chat, repository) registration, auto-creating the
	// project when the repository is seen for the first time.
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)

	// Unregister removes one (chat, repository) registration. Returns
	// ErrNotRegistered when none exists.
	Unregister(ctx context.Context, chatID, repository string) error

	// UnregisterChat removes every registration of the target chat. Admin
	// operation. Returns ErrNothingToDelete when the chat has none.
	UnregisterChat(ctx context.Context, targetChatID string) (UnregisterChatOutput, error)

	// ListByChat returns all registrations of one chat, newest first.
	ListByChat(ctx context.Context, chatID string) ([]model.Subscriber, error)

	// Toggle flips one notification preference of an existing registration.
	Toggle(ctx context.Context, input ToggleInput) (ToggleOutput, error)

	// ListProjects returns the active projects.
	ListProjects(ctx context.Context) ([]model.Project, error)

	// ListAll returns every registration across all chats. Admin operation.
	ListAll(ctx context.Context) ([]model.Subscriber, error)
}
