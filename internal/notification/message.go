package notification

import (
	"fmt"
	"strings"

	"cicd-telegram-notifier/internal/model"
)

// maxJobLines caps how many individual job lines a message shows. The totals
// line always counts every job.
const maxJobLines = 10

// markdownEscapeSet is the fixed set of markup-sensitive characters escaped in
// free-text fields. URLs, commit SHAs, and the markup the formatter itself
// inserts are never escaped.
const markdownEscapeSet = "_*[]()~`>#+=|{}.!-"

// EscapeMarkdown prefixes every escape-set character in text with a backslash.
func EscapeMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(markdownEscapeSet, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StatusEmoji maps a workflow status to its display emoji. Unknown values get
// a defensive default rather than crashing.
func StatusEmoji(status model.WorkflowStatus) string {
	switch status {
	case model.StatusSuccess:
		return "✅"
	case model.StatusFailure:
		return "❌"
	case model.StatusCancelled:
		return "⚠️"
	case model.StatusSkipped:
		return "⏭️"
	case model.StatusInProgress:
		return "🔄"
	default:
		return "🔵"
	}
}

// ResultEmoji maps a job result to its display emoji.
func ResultEmoji(result model.JobResult) string {
	switch result {
	case model.ResultSuccess:
		return "✅"
	case model.ResultFailure:
		return "❌"
	case model.ResultInProgress:
		return "🔄"
	case model.ResultCancelled:
		return "⚠️"
	case model.ResultSkipped:
		return "⏭️"
	default:
		return "🔵"
	}
}

// formatStatus renders the bolded status label with its emoji.
func formatStatus(status model.WorkflowStatus) string {
	label := strings.ReplaceAll(strings.ToUpper(string(status)), "_", " ")
	return fmt.Sprintf("%s *%s*", StatusEmoji(status), label)
}

// FormatMessage renders the notification body for one workflow event. It is a
// total, deterministic function over well-formed normalized input; the same
// (event, projectName) pair always yields byte-identical output.
func FormatMessage(event model.WorkflowEvent, projectName string) string {
	repoURL := "https://github.com/" + event.Repository
	branchURL := repoURL + "/tree/" + event.Branch
	actorURL := "https://github.com/" + event.Actor

	return fmt.Sprintf(`%s *CI/CD Notification*
    *Workflow:* %s
    *Project:* %s
    *Status:* %s

    • *Repository:* [%s](%s)
    • *Branch:* [%s](%s)
    • *Actor:* [%s](%s)
    • *Commit:* `+"`%s`"+`
    • *Message:* _"%s"_%s

    [View Workflow Run](%s)`,
		StatusEmoji(event.Status),
		EscapeMarkdown(event.WorkflowName),
		EscapeMarkdown(projectName),
		formatStatus(event.Status),
		event.Repository, repoURL,
		event.Branch, branchURL,
		EscapeMarkdown(event.Actor), actorURL,
		event.CommitSHA[:7],
		EscapeMarkdown(event.CommitMessage),
		formatJobsSection(event),
		event.RunURL,
	)
}

// formatJobsSection renders the optional Jobs block: up to maxJobLines job
// lines, a totals line over ALL jobs, and an "…and N more" trailer when the
// list is truncated. Empty job list yields an empty string.
func formatJobsSection(event model.WorkflowEvent) string {
	if len(event.Jobs) == 0 {
		return ""
	}

	shown := event.Jobs
	if len(shown) > maxJobLines {
		shown = shown[:maxJobLines]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n\n*Jobs (%d):*\n", len(event.Jobs))
	for i, j := range shown {
		if i > 0 {
			b.WriteByte('\n')
		}
		label := strings.ReplaceAll(strings.ToUpper(string(j.Result)), "_", " ")
		fmt.Fprintf(&b, "  - %s [%s](%s) • %s", ResultEmoji(j.Result), EscapeMarkdown(j.Name), j.URL, label)
	}

	counts := event.CountJobs()
	fmt.Fprintf(&b, "\nTotals: ✅ %d • ❌ %d • 🔄 %d • ⚠️ %d • ⏭️ %d",
		counts.Success, counts.Failure, counts.InProgress, counts.Cancelled, counts.Skipped)

	if len(event.Jobs) > maxJobLines {
		fmt.Fprintf(&b, "\n  …and %d more", len(event.Jobs)-maxJobLines)
	}
	return b.String()
}
