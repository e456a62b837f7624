package postgre

import (
	"database/sql"
	"fmt"

	"cicd-telegram-notifier/internal/subscription/repository"
	"cicd-telegram-notifier/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the subscription domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("subscription/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("subscription/repository/postgre.%s", method)
}
