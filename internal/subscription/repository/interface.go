package repository

import (
	"context"

	"cicd-telegram-notifier/internal/model"
)

// Repository is the data-store interface for the subscription domain.
type Repository interface {
	// GetSubscriber returns the zero-value Subscriber (ID == "") when no
	// registration exists for (chatID, repository) — not an error.
	GetSubscriber(ctx context.Context, chatID, repository string) (model.Subscriber, error)
	UpsertSubscriber(ctx context.Context, opt UpsertSubscriberOptions) (model.Subscriber, error)
	UpdateNotifyFlag(ctx context.Context, opt UpdateNotifyFlagOptions) (model.Subscriber, error)
	// DeleteSubscriber removes one registration and reports the rows removed.
	DeleteSubscriber(ctx context.Context, chatID, repository string) (int64, error)
	DeleteByChat(ctx context.Context, chatID string) (int64, error)
	ListByChat(ctx context.Context, chatID string) ([]model.Subscriber, error)
	ListAll(ctx context.Context) ([]model.Subscriber, error)

	// GetProjectByRepository returns the zero-value Project when none exists.
	GetProjectByRepository(ctx context.Context, repository string) (model.Project, error)
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	ListActiveProjects(ctx context.Context) ([]model.Project, error)
}
