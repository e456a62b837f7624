package model

import "time"

// Project is a registered repository that can receive CI notifications.
// Repository (owner/repo) is the unique key; projects are never auto-deleted.
type Project struct {
	ID          string
	Name        string
	Repository  string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
