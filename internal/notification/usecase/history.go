package usecase

import (
	"context"

	"cicd-telegram-notifier/internal/notification"
	repo "cicd-telegram-notifier/internal/notification/repository"
)

// History returns a newest-first page of processed-event audit records.
func (uc *implUseCase) History(ctx context.Context, input notification.ListWebhooksInput) (notification.ListWebhooksOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	records, total, err := uc.repo.ListWebhooks(ctx, repo.ListWebhooksOptions{
		ProjectID: input.ProjectID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListWebhooks: %v", err)
		return notification.ListWebhooksOutput{}, err
	}

	return notification.ListWebhooksOutput{
		Webhooks: records,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}
