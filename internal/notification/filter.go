package notification

import (
	"strings"

	"cicd-telegram-notifier/internal/model"
)

// EligibleSubscribers selects the subscribers whose preferences admit this
// event, preserving input order. The exclusion checks are independent and
// additive: one matched exclusion drops the subscriber regardless of the
// other flags. Statuses other than success/failure are never excluded by the
// status checks.
func EligibleSubscribers(event model.WorkflowEvent, subscribers []model.Subscriber) []model.Subscriber {
	workflow := strings.ToLower(event.WorkflowName)

	eligible := make([]model.Subscriber, 0, len(subscribers))
	for _, s := range subscribers {
		if event.Status == model.StatusSuccess && !s.NotifyOnSuccess {
			continue
		}
		if event.Status == model.StatusFailure && !s.NotifyOnFailure {
			continue
		}
		if strings.Contains(workflow, "build") && !s.NotifyOnBuild {
			continue
		}
		if strings.Contains(workflow, "deploy") && !s.NotifyOnDeploy {
			continue
		}
		if strings.Contains(workflow, "test") && !s.NotifyOnTest {
			continue
		}
		eligible = append(eligible, s)
	}
	return eligible
}
