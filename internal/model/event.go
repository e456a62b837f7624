package model

// WorkflowStatus is the closed set of workflow run statuses accepted from CI.
type WorkflowStatus string

const (
	StatusSuccess    WorkflowStatus = "success"
	StatusFailure    WorkflowStatus = "failure"
	StatusCancelled  WorkflowStatus = "cancelled"
	StatusSkipped    WorkflowStatus = "skipped"
	StatusInProgress WorkflowStatus = "in_progress"
)

// WorkflowStatuses lists every valid WorkflowStatus, used for payload validation.
var WorkflowStatuses = []WorkflowStatus{
	StatusSuccess,
	StatusFailure,
	StatusCancelled,
	StatusSkipped,
	StatusInProgress,
}

// ValidWorkflowStatus reports whether s is a member of the closed status set.
func ValidWorkflowStatus(s string) bool {
	for _, st := range WorkflowStatuses {
		if s == string(st) {
			return true
		}
	}
	return false
}

// JobResult is the closed set of per-job outcomes. Richer upstream conclusions
// (timed_out, neutral, stale, ...) collapse into this set during normalization.
type JobResult string

const (
	ResultSuccess    JobResult = "success"
	ResultFailure    JobResult = "failure"
	ResultInProgress JobResult = "in_progress"
	ResultCancelled  JobResult = "cancelled"
	ResultSkipped    JobResult = "skipped"
)

// JobResults lists every valid JobResult, used for payload validation.
var JobResults = []JobResult{
	ResultSuccess,
	ResultFailure,
	ResultInProgress,
	ResultCancelled,
	ResultSkipped,
}

// ValidJobResult reports whether r is a member of the closed result set.
func ValidJobResult(r string) bool {
	for _, jr := range JobResults {
		if r == string(jr) {
			return true
		}
	}
	return false
}

// Job is one unit of work within a workflow run, post-normalization.
type Job struct {
	ID          int64
	Name        string
	Result      JobResult
	URL         string
	StartedAt   string // RFC3339 string from CI, empty if absent
	CompletedAt string // RFC3339 string from CI, empty if absent
	DurationMS  *int64 // derived: CompletedAt − StartedAt; nil when either side is missing or unparsable
}

// WorkflowEvent is a validated CI workflow-run event with a single canonical job list.
type WorkflowEvent struct {
	WorkflowName  string
	Repository    string // owner/repo
	RunID         string
	RunURL        string
	Status        WorkflowStatus
	Branch        string
	CommitSHA     string
	CommitMessage string
	Actor         string
	Jobs          []Job
}

// JobCounts is the per-result breakdown of a workflow event's job list.
type JobCounts struct {
	Total      int `json:"total"`
	Success    int `json:"success"`
	Failure    int `json:"failure"`
	InProgress int `json:"in_progress"`
	Cancelled  int `json:"cancelled"`
	Skipped    int `json:"skipped"`
}

// CountJobs tallies the event's jobs into per-result buckets.
func (e WorkflowEvent) CountJobs() JobCounts {
	c := JobCounts{Total: len(e.Jobs)}
	for _, j := range e.Jobs {
		switch j.Result {
		case ResultSuccess:
			c.Success++
		case ResultFailure:
			c.Failure++
		case ResultInProgress:
			c.InProgress++
		case ResultCancelled:
			c.Cancelled++
		case ResultSkipped:
			c.Skipped++
		}
	}
	return c
}
