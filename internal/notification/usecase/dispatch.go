package usecase

import (
	"context"

	"cicd-telegram-notifier/internal/model"
	"cicd-telegram-notifier/internal/notification"
	repo "cicd-telegram-notifier/internal/notification/repository"
)

// Dispatch processes one inbound workflow event end to end:
// normalize → resolve project → load subscribers → filter → format once →
// deliver per recipient with failure isolation → append exactly one audit record.
func (uc *implUseCase) Dispatch(ctx context.Context, payload notification.WebhookPayload) (notification.DispatchOutput, error) {
	// 1. Normalize. A malformed payload rejects the whole operation with no
	// side effects.
	event, err := notification.NormalizePayload(payload)
	if err != nil {
		return notification.DispatchOutput{}, err
	}

	out := notification.DispatchOutput{
		Event:     event,
		JobCounts: event.CountJobs(),
	}

	// 2. Resolve project. Unknown repository or inactive project is a defined
	// no-op, not an error.
	project, err := uc.repo.GetProjectByRepository(ctx, event.Repository)
	if err != nil {
		return notification.DispatchOutput{}, err
	}
	if project.ID == "" || !project.IsActive {
		uc.l.Infof(ctx, "dispatch: project %s not found or inactive, skipping", event.Repository)
		out.Skipped = true
		out.SkipReason = "project not found or inactive"
		return out, nil
	}
	out.ProjectName = project.Name

	// 3. Load active subscribers. Zero registrations is the same no-op path:
	// nothing to send, nothing to audit.
	subscribers, err := uc.repo.ListActiveSubscribers(ctx, repo.ListActiveSubscribersOptions{
		ProjectID:  project.ID,
		Repository: event.Repository,
	})
	if err != nil {
		return notification.DispatchOutput{}, err
	}
	if len(subscribers) == 0 {
		uc.l.Infof(ctx, "dispatch: no subscribers registered for %s, skipping", event.Repository)
		out.Skipped = true
		out.SkipReason = "no subscribers registered"
		return out, nil
	}

	// 4–5. Filter, then render the message once: every recipient gets the
	// same text.
	selected := notification.EligibleSubscribers(event, subscribers)
	message := notification.FormatMessage(event, project.Name)

	uc.l.Infof(ctx, "dispatch: sending to %d of %d subscribers for %s",
		len(selected), len(subscribers), event.Repository)

	// 6. Deliver independently. One recipient's failure never aborts the
	// remaining deliveries or the audit write.
	for _, s := range selected {
		out.Outcomes = append(out.Outcomes, uc.deliver(ctx, s.ChatID, s.Username, message))
	}

	// 7. Exactly one audit record per dispatched event, written after all
	// delivery attempts — even when every delivery failed. A failed audit
	// write is retried once, then logged: the event still counts as processed.
	if err := uc.appendAudit(ctx, project.ID, event); err != nil {
		uc.l.Errorf(ctx, "dispatch: audit write failed for %s run %s: %v", event.Repository, event.RunID, err)
	} else {
		out.AuditRecorded = true
	}

	return out, nil
}

// deliver attempts one recipient's send under a bounded timeout.
func (uc *implUseCase) deliver(ctx context.Context, chatID, username, message string) notification.DeliveryOutcome {
	sendCtx, cancel := context.WithTimeout(ctx, uc.sendTimeout)
	defer cancel()

	outcome := notification.DeliveryOutcome{ChatID: chatID, Username: username}
	if err := uc.sender.SendMessageWithMode(sendCtx, chatID, message, "Markdown"); err != nil {
		uc.l.Errorf(ctx, "dispatch: delivery to chat %s failed: %v", chatID, err)
		outcome.Err = err
	}
	return outcome
}

// appendAudit writes the audit record, retrying once on failure since it is
// the last step and the inserted row is keyed by a fresh ID (safe to repeat).
func (uc *implUseCase) appendAudit(ctx context.Context, projectID string, event model.WorkflowEvent) error {
	opt := repo.CreateWebhookOptions{
		ProjectID:     projectID,
		WorkflowName:  event.WorkflowName,
		RunID:         event.RunID,
		RunURL:        event.RunURL,
		Status:        event.Status,
		Branch:        event.Branch,
		CommitSHA:     event.CommitSHA,
		CommitMessage: event.CommitMessage,
		Actor:         event.Actor,
	}

	_, err := uc.repo.CreateWebhook(ctx, opt)
	if err == nil {
		return nil
	}
	uc.l.Warnf(ctx, "dispatch: audit write failed, retrying once: %v", err)
	_, err = uc.repo.CreateWebhook(ctx, opt)
	return err
}
