package repository

import "cicd-telegram-notifier/internal/model"

// UpsertSubscriberOptions creates or reactivates a (chat, repository)
// registration. Preference flags keep their stored values on conflict; the
// defaults below apply only to fresh rows.
type UpsertSubscriberOptions struct {
	ChatID         string
	Username       string
	GithubUsername string
	Repository     string
	ProjectID      string
}

// UpdateNotifyFlagOptions sets a single preference flag.
type UpdateNotifyFlagOptions struct {
	ChatID     string
	Repository string
	Kind       model.NotifyKind
	Value      bool
}

// CreateProjectOptions holds parameters for inserting one project.
type CreateProjectOptions struct {
	Name        string
	Repository  string
	Description string
	IsActive    bool
}
