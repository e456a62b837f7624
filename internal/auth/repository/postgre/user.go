package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	repo "cicd-telegram-notifier/internal/auth/repository"
	"cicd-telegram-notifier/internal/model"
)

const userColumns = `id, username, password_hash, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetUser retrieves a single user by the provided filters (AND).
// Returns the zero-value User when not found — not an error.
func (r *implRepository) GetUser(ctx context.Context, opt repo.GetUserOptions) (model.User, error) {
	conditions := []string{}
	args := []any{}
	if opt.ID != "" {
		args = append(args, opt.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Username != "" {
		args = append(args, opt.Username)
		conditions = append(conditions, fmt.Sprintf("username = $%d", len(args)))
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "TRUE")
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, strings.Join(conditions, " AND "))
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// CreateUser inserts a new user row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	query := `
		INSERT INTO users (id, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.Username, opt.PasswordHash))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// UpdatePassword replaces the stored password hash for a user.
func (r *implRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, passwordHash, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdatePassword"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// CountUsers returns the total number of accounts.
func (r *implRepository) CountUsers(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountUsers"), err)
		return 0, repo.ErrFailedToGet
	}
	return total, nil
}
