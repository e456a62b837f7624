package postgre

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"cicd-telegram-notifier/internal/model"
	repo "cicd-telegram-notifier/internal/notification/repository"
)

const webhookColumns = `
	id, project_id, workflow_name, run_id, run_url, status, branch,
	commit_sha, commit_message, actor, created_at`

// CreateWebhook appends one audit record for a processed event.
func (r *implRepository) CreateWebhook(ctx context.Context, opt repo.CreateWebhookOptions) (model.WebhookRecord, error) {
	query := `
		INSERT INTO webhooks (id, project_id, workflow_name, run_id, run_url, status, branch,
			commit_sha, commit_message, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING ` + webhookColumns

	var w model.WebhookRecord
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.ProjectID, opt.WorkflowName, opt.RunID, opt.RunURL,
		string(opt.Status), opt.Branch, opt.CommitSHA, opt.CommitMessage, opt.Actor,
	).Scan(
		&w.ID, &w.ProjectID, &w.WorkflowName, &w.RunID, &w.RunURL, &w.Status,
		&w.Branch, &w.CommitSHA, &w.CommitMessage, &w.Actor, &w.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateWebhook"), err)
		return model.WebhookRecord{}, repo.ErrFailedToInsert
	}
	return w, nil
}

// ListWebhooks returns a newest-first page of audit records and the total count.
func (r *implRepository) ListWebhooks(ctx context.Context, opt repo.ListWebhooksOptions) ([]model.WebhookRecord, int, error) {
	var conds []string
	var args []any
	if opt.ProjectID != "" {
		conds = append(conds, fmt.Sprintf("project_id = $%d", len(args)+1))
		args = append(args, opt.ProjectID)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM webhooks" + where
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListWebhooks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(
		"SELECT %s FROM webhooks%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		webhookColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListWebhooks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var records []model.WebhookRecord
	for rows.Next() {
		var w model.WebhookRecord
		if err := rows.Scan(
			&w.ID, &w.ProjectID, &w.WorkflowName, &w.RunID, &w.RunURL, &w.Status,
			&w.Branch, &w.CommitSHA, &w.CommitMessage, &w.Actor, &w.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListWebhooks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		records = append(records, w)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListWebhooks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return records, total, nil
}
