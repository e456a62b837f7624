package notification

import (
	"cicd-telegram-notifier/internal/model"
)

// WebhookPayload is the inbound workflow-run event as posted by the CI
// pipeline. Field names are fixed wire format; validation happens in
// NormalizePayload, not at bind time.
type WebhookPayload struct {
	WorkflowName  string           `json:"workflow_name"`
	Repository    string           `json:"repository"`
	RunID         string           `json:"run_id"`
	RunURL        string           `json:"run_url"`
	Status        string           `json:"status"`
	Branch        string           `json:"branch"`
	CommitSHA     string           `json:"commit_sha"`
	CommitMessage string           `json:"commit_message,omitempty"`
	Actor         string           `json:"actor"`
	Jobs          []JobPayload     `json:"jobs,omitempty"`
	JobsFull      *JobsFullPayload `json:"jobs_full,omitempty"`

	WorkflowDurationMS *int64 `json:"workflow_duration_ms,omitempty"`
}

// JobPayload is the lightweight job shape carried in the `jobs` array.
type JobPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Result      string `json:"result"`
	URL         string `json:"url"`
	StartedAt   string `json:"started_at,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`
	DurationMS  *int64 `json:"duration_ms,omitempty"`
}

// JobsFullPayload is the raw job list from the upstream CI provider's job API.
// Only the fields the normalizer reads are modeled; unrecognized fields are
// dropped by json decoding.
type JobsFullPayload struct {
	TotalCount int           `json:"total_count"`
	Jobs       []UpstreamJob `json:"jobs"`
}

// UpstreamJob is the narrow typed subset of an upstream job object.
type UpstreamJob struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Conclusion  string `json:"conclusion"`
	HTMLURL     string `json:"html_url"`
	URL         string `json:"url"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
}

// DeliveryOutcome is the result of one recipient's delivery attempt.
type DeliveryOutcome struct {
	ChatID   string
	Username string
	Err      error
}

// Delivered reports whether the message reached this recipient.
func (o DeliveryOutcome) Delivered() bool { return o.Err == nil }

// DispatchOutput summarizes one processed event for the caller. Outcomes are
// observability data only; they are not persisted.
type DispatchOutput struct {
	Event         model.WorkflowEvent
	ProjectName   string
	JobCounts     model.JobCounts
	Outcomes      []DeliveryOutcome
	AuditRecorded bool

	// Skipped is set on the defined no-op paths: unknown repository,
	// inactive project, or zero registered subscribers.
	Skipped    bool
	SkipReason string
}

// Delivered counts the successful deliveries.
func (o DispatchOutput) Delivered() int {
	n := 0
	for _, out := range o.Outcomes {
		if out.Delivered() {
			n++
		}
	}
	return n
}

// ListWebhooksInput holds filter and pagination parameters for webhook history.
type ListWebhooksInput struct {
	ProjectID string
	Limit     int
	Offset    int
}

// ListWebhooksOutput is a page of webhook history records.
type ListWebhooksOutput struct {
	Webhooks []model.WebhookRecord
	Total    int
	Limit    int
	Offset   int
}
