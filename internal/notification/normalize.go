package notification

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"cicd-telegram-notifier/internal/model"
)

var repositoryPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+/[a-zA-Z0-9._-]+$`)

// NormalizePayload validates an inbound payload and canonicalizes it into a
// WorkflowEvent with exactly one job list. It is pure: no I/O, identical input
// always yields identical output. On any violation it returns a
// *ValidationError and the whole event must be rejected.
func NormalizePayload(p WebhookPayload) (model.WorkflowEvent, error) {
	verr := &ValidationError{}

	if p.WorkflowName == "" {
		verr.add("workflow_name", "workflow name is required")
	}
	if p.Repository == "" {
		verr.add("repository", "repository is required")
	} else if !repositoryPattern.MatchString(p.Repository) {
		verr.add("repository", "repository must be in format: owner/repo")
	}
	if p.RunID == "" {
		verr.add("run_id", "run ID is required")
	}
	if !validURL(p.RunURL) {
		verr.add("run_url", "run URL must be a valid URL")
	}
	if !model.ValidWorkflowStatus(p.Status) {
		verr.add("status", fmt.Sprintf("invalid status %q", p.Status))
	}
	if p.Branch == "" {
		verr.add("branch", "branch is required")
	}
	if len(p.CommitSHA) < 7 {
		verr.add("commit_sha", "commit SHA must be at least 7 characters")
	}
	if p.Actor == "" {
		verr.add("actor", "actor is required")
	}

	jobs := make([]model.Job, 0, len(p.Jobs))
	for i, jp := range p.Jobs {
		if jp.Name == "" {
			verr.add(fmt.Sprintf("jobs[%d].name", i), "job name is required")
		}
		if !model.ValidJobResult(jp.Result) {
			verr.add(fmt.Sprintf("jobs[%d].result", i), fmt.Sprintf("invalid result %q", jp.Result))
		}
		if !validURL(jp.URL) {
			verr.add(fmt.Sprintf("jobs[%d].url", i), "job URL must be a valid URL")
		}
		jobs = append(jobs, model.Job{
			ID:          jp.ID,
			Name:        jp.Name,
			Result:      model.JobResult(jp.Result),
			URL:         jp.URL,
			StartedAt:   jp.StartedAt,
			CompletedAt: jp.CompletedAt,
			DurationMS:  durationMS(jp.StartedAt, jp.CompletedAt),
		})
	}

	if len(verr.Violations) > 0 {
		return model.WorkflowEvent{}, verr
	}

	// The lightweight jobs list is authoritative; jobs_full is only consulted
	// when jobs is empty.
	if len(jobs) == 0 && p.JobsFull != nil {
		jobs = deriveJobs(p.JobsFull.Jobs, p.RunURL)
	}

	return model.WorkflowEvent{
		WorkflowName:  p.WorkflowName,
		Repository:    p.Repository,
		RunID:         p.RunID,
		RunURL:        p.RunURL,
		Status:        model.WorkflowStatus(p.Status),
		Branch:        p.Branch,
		CommitSHA:     p.CommitSHA,
		CommitMessage: p.CommitMessage,
		Actor:         p.Actor,
		Jobs:          jobs,
	}, nil
}

// MapJobAPIToResult collapses an upstream (status, conclusion) pair into the
// closed JobResult set. It is total: every input maps to exactly one result.
func MapJobAPIToResult(status, conclusion string) model.JobResult {
	st := strings.ToLower(status)
	conc := strings.ToLower(conclusion)

	// Still running: status present and not completed, no conclusion yet.
	if st != "" && st != "completed" && conc == "" {
		return model.ResultInProgress
	}

	switch conc {
	case "success":
		return model.ResultSuccess
	case "failure":
		return model.ResultFailure
	case "cancelled":
		return model.ResultCancelled
	case "skipped":
		return model.ResultSkipped
	case "neutral":
		return model.ResultSuccess
	case "timed_out", "action_required", "startup_failure", "stale":
		return model.ResultFailure
	default:
		if conc != "" {
			return model.ResultFailure
		}
		return model.ResultInProgress
	}
}

// deriveJobs builds lightweight jobs from the upstream job API list.
func deriveJobs(upstream []UpstreamJob, runURL string) []model.Job {
	jobs := make([]model.Job, 0, len(upstream))
	for _, uj := range upstream {
		jobURL := uj.HTMLURL
		if jobURL == "" {
			jobURL = uj.URL
		}
		if jobURL == "" {
			jobURL = runURL
		}
		name := uj.Name
		if name == "" {
			name = fmt.Sprintf("Job %d", uj.ID)
		}
		jobs = append(jobs, model.Job{
			ID:          uj.ID,
			Name:        name,
			Result:      MapJobAPIToResult(uj.Status, uj.Conclusion),
			URL:         jobURL,
			StartedAt:   uj.StartedAt,
			CompletedAt: uj.CompletedAt,
			DurationMS:  durationMS(uj.StartedAt, uj.CompletedAt),
		})
	}
	return jobs
}

// durationMS computes CompletedAt − StartedAt in milliseconds, or nil unless
// both timestamps parse to valid instants and end >= start.
func durationMS(startedAt, completedAt string) *int64 {
	if startedAt == "" || completedAt == "" {
		return nil
	}
	start, err := time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil
	}
	end, err := time.Parse(time.RFC3339, completedAt)
	if err != nil {
		return nil
	}
	if end.Before(start) {
		return nil
	}
	ms := end.Sub(start).Milliseconds()
	return &ms
}

func validURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
