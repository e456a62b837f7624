package postgre

import (
	"context"
	"database/sql"

	"cicd-telegram-notifier/internal/model"
	repo "cicd-telegram-notifier/internal/notification/repository"
)

// GetProjectByRepository fetches the project registered for a repository.
// Returns zero-value Project (ID == "") when not found — do NOT return error
// for not-found.
func (r *implRepository) GetProjectByRepository(ctx context.Context, repository string) (model.Project, error) {
	const query = `
		SELECT id, name, repository, description, is_active, created_at, updated_at
		FROM projects
		WHERE repository = $1`

	var p model.Project
	err := r.db.QueryRowContext(ctx, query, repository).Scan(
		&p.ID, &p.Name, &p.Repository, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProjectByRepository"), err)
		return model.Project{}, repo.ErrFailedToGet
	}
	return p, nil
}
