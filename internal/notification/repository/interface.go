package repository

import (
	"context"

	"cicd-telegram-notifier/internal/model"
)

// Repository is the composed data-store interface consumed by the
// notification use case.
type Repository interface {
	ProjectStore
	SubscriberStore
	AuditStore
}

// ProjectStore resolves projects by their unique repository key.
type ProjectStore interface {
	// GetProjectByRepository returns the zero-value Project (ID == "") when
	// no project exists for the repository — not an error.
	GetProjectByRepository(ctx context.Context, repository string) (model.Project, error)
}

// SubscriberStore lists notification registrations.
type SubscriberStore interface {
	ListActiveSubscribers(ctx context.Context, opt ListActiveSubscribersOptions) ([]model.Subscriber, error)
}

// AuditStore appends and queries the processed-event audit trail.
type AuditStore interface {
	CreateWebhook(ctx context.Context, opt CreateWebhookOptions) (model.WebhookRecord, error)
	ListWebhooks(ctx context.Context, opt ListWebhooksOptions) ([]model.WebhookRecord, int, error)
}
