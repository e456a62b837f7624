package postgre

import (
	"context"

	"cicd-telegram-notifier/internal/model"
	repo "cicd-telegram-notifier/internal/notification/repository"
)

const subscriberColumns = `
	id, chat_id, username, github_username, repository, project_id, is_active,
	notify_on_success, notify_on_failure, notify_on_build, notify_on_deploy, notify_on_test,
	created_at, updated_at`

// ListActiveSubscribers returns the active registrations for the given
// project+repository pair, oldest registration first.
func (r *implRepository) ListActiveSubscribers(ctx context.Context, opt repo.ListActiveSubscribersOptions) ([]model.Subscriber, error) {
	query := `
		SELECT ` + subscriberColumns + `
		FROM notification_settings
		WHERE is_active = TRUE AND repository = $1 AND project_id = $2
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.Repository, opt.ProjectID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActiveSubscribers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var subscribers []model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(
			&s.ID, &s.ChatID, &s.Username, &s.GithubUsername, &s.Repository, &s.ProjectID, &s.IsActive,
			&s.NotifyOnSuccess, &s.NotifyOnFailure, &s.NotifyOnBuild, &s.NotifyOnDeploy, &s.NotifyOnTest,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListActiveSubscribers"), err)
			return nil, repo.ErrFailedToList
		}
		subscribers = append(subscribers, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListActiveSubscribers"), err)
		return nil, repo.ErrFailedToList
	}
	return subscribers, nil
}
