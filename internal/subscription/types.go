package subscription

import "cicd-telegram-notifier/internal/model"

// RegisterInput registers one chat for one repository. GithubUsername is
// optional and only meaningful for private chats.
type RegisterInput struct {
	ChatID         string
	Username       string
	GithubUsername string
	Repository     string
}

// RegisterOutput reports the stored registration and whether the project row
// had to be auto-created.
type RegisterOutput struct {
	Subscriber     model.Subscriber
	Project        model.Project
	ProjectCreated bool
}

// ToggleInput flips one notification preference of an existing registration.
type ToggleInput struct {
	ChatID     string
	Repository string
	Kind       model.NotifyKind
}

// ToggleOutput carries the preference value after the flip.
type ToggleOutput struct {
	Subscriber model.Subscriber
	NewValue   bool
}

// UnregisterChatOutput lists what an admin wipe removed.
type UnregisterChatOutput struct {
	ChatID  string
	Removed []model.Subscriber
}
