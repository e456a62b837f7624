package repository

import "cicd-telegram-notifier/internal/model"

// ListActiveSubscribersOptions filters the active registrations for one
// project+repository pair.
type ListActiveSubscribersOptions struct {
	ProjectID  string
	Repository string
}

// CreateWebhookOptions holds parameters for appending one audit record.
type CreateWebhookOptions struct {
	ProjectID     string
	WorkflowName  string
	RunID         string
	RunURL        string
	Status        model.WorkflowStatus
	Branch        string
	CommitSHA     string
	CommitMessage string
	Actor         string
}

// ListWebhooksOptions holds filter and pagination parameters for history queries.
type ListWebhooksOptions struct {
	ProjectID string
	Limit     int
	Offset    int
}
