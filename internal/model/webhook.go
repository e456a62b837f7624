package model

import "time"

// WebhookRecord is the append-only audit entry written once per processed
// workflow event. Records are never mutated or deleted by the dispatch path.
type WebhookRecord struct {
	ID            string
	ProjectID     string
	WorkflowName  string
	RunID         string
	RunURL        string
	Status        WorkflowStatus
	Branch        string
	CommitSHA     string
	CommitMessage string
	Actor         string
	CreatedAt     time.Time
}
