package repository

import (
	"context"
	"database/sql"
	"time"

	"opencog_dashboard/internal/models"
)

// OutputRepo is the append-only store behind the dashboard output panel.
type OutputRepo interface {
	Append(ctx context.Context, e models.OutputLogEntry) (models.OutputLogEntry, error)
	List(ctx context.Context, from, to time.Time) ([]models.OutputLogEntry, error)
	Clear(ctx context.Context) error
}

type Repository struct {
	OutputRepo OutputRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		OutputRepo: NewOutputSQLite(db),
	}
}
