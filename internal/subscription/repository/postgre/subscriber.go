package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"cicd-telegram-notifier/internal/model"
	repo "cicd-telegram-notifier/internal/subscription/repository"
)

const subscriberColumns = `
	id, chat_id, username, github_username, repository, project_id, is_active,
	notify_on_success, notify_on_failure, notify_on_build, notify_on_deploy, notify_on_test,
	created_at, updated_at`

func scanSubscriber(row interface{ Scan(...any) error }) (model.Subscriber, error) {
	var s model.Subscriber
	err := row.Scan(
		&s.ID, &s.ChatID, &s.Username, &s.GithubUsername, &s.Repository, &s.ProjectID, &s.IsActive,
		&s.NotifyOnSuccess, &s.NotifyOnFailure, &s.NotifyOnBuild, &s.NotifyOnDeploy, &s.NotifyOnTest,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetSubscriber returns the zero-value Subscriber when no registration exists.
func (r *implRepository) GetSubscriber(ctx context.Context, chatID, repository string) (model.Subscriber, error) {
	query := `
		SELECT ` + subscriberColumns + `
		FROM notification_settings
		WHERE chat_id = $1 AND repository = $2`

	s, err := scanSubscriber(r.db.QueryRowContext(ctx, query, chatID, repository))
	if err == sql.ErrNoRows {
		return model.Subscriber{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSubscriber"), err)
		return model.Subscriber{}, repo.ErrFailedToGet
	}
	return s, nil
}

// UpsertSubscriber inserts or reactivates a registration keyed by
// (chat_id, repository). Preference flags are left untouched on conflict.
func (r *implRepository) UpsertSubscriber(ctx context.Context, opt repo.UpsertSubscriberOptions) (model.Subscriber, error) {
	query := `
		INSERT INTO notification_settings (
			id, chat_id, username, github_username, repository, project_id, is_active,
			notify_on_success, notify_on_failure, notify_on_build, notify_on_deploy, notify_on_test,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, TRUE, FALSE, TRUE, TRUE, TRUE, TRUE, NOW(), NOW())
		ON CONFLICT (chat_id, repository) DO UPDATE SET
			username = EXCLUDED.username,
			github_username = EXCLUDED.github_username,
			project_id = EXCLUDED.project_id,
			is_active = TRUE,
			updated_at = NOW()
		RETURNING ` + subscriberColumns

	s, err := scanSubscriber(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.ChatID, opt.Username, opt.GithubUsername, opt.Repository, opt.ProjectID,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSubscriber"), err)
		return model.Subscriber{}, repo.ErrFailedToInsert
	}
	return s, nil
}

// notifyFlagColumn maps a preference kind to its column. The switch is closed
// so the identifier is never taken from user input.
func notifyFlagColumn(kind model.NotifyKind) string {
	switch kind {
	case model.NotifySuccess:
		return "notify_on_success"
	case model.NotifyFailure:
		return "notify_on_failure"
	case model.NotifyBuild:
		return "notify_on_build"
	case model.NotifyDeploy:
		return "notify_on_deploy"
	case model.NotifyTest:
		return "notify_on_test"
	default:
		return ""
	}
}

func (r *implRepository) UpdateNotifyFlag(ctx context.Context, opt repo.UpdateNotifyFlagOptions) (model.Subscriber, error) {
	column := notifyFlagColumn(opt.Kind)
	if column == "" {
		return model.Subscriber{}, repo.ErrFailedToUpdate
	}

	query := `
		UPDATE notification_settings
		SET ` + column + ` = $1, updated_at = NOW()
		WHERE chat_id = $2 AND repository = $3
		RETURNING ` + subscriberColumns

	s, err := scanSubscriber(r.db.QueryRowContext(ctx, query, opt.Value, opt.ChatID, opt.Repository))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNotifyFlag"), err)
		return model.Subscriber{}, repo.ErrFailedToUpdate
	}
	return s, nil
}

func (r *implRepository) DeleteSubscriber(ctx context.Context, chatID, repository string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notification_settings WHERE chat_id = $1 AND repository = $2`,
		chatID, repository,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSubscriber"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *implRepository) DeleteByChat(ctx context.Context, chatID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notification_settings WHERE chat_id = $1`,
		chatID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteByChat"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// ListByChat returns a chat's registrations, newest first.
func (r *implRepository) ListByChat(ctx context.Context, chatID string) ([]model.Subscriber, error) {
	query := `
		SELECT ` + subscriberColumns + `
		FROM notification_settings
		WHERE chat_id = $1
		ORDER BY created_at DESC`

	return r.querySubscribers(ctx, "ListByChat", query, chatID)
}

// ListAll returns every registration ordered for per-chat grouping.
func (r *implRepository) ListAll(ctx context.Context) ([]model.Subscriber, error) {
	query := `
		SELECT ` + subscriberColumns + `
		FROM notification_settings
		ORDER BY chat_id ASC, repository ASC`

	return r.querySubscribers(ctx, "ListAll", query)
}

func (r *implRepository) querySubscribers(ctx context.Context, method, query string, args ...any) ([]model.Subscriber, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var subscribers []model.Subscriber
	for rows.Next() {
		s, err := scanSubscriber(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repo.ErrFailedToList
		}
		subscribers = append(subscribers, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	return subscribers, nil
}
