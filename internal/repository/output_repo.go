package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"opencog_dashboard/internal/models"

	"github.com/google/uuid"
)

type OutputSQLite struct {
	db *sql.DB
}

func NewOutputSQLite(db *sql.DB) *OutputSQLite { return &OutputSQLite{db: db} }

// Ensure implementation of OutputRepo interface at compile time.
var _ OutputRepo = (*OutputSQLite)(nil)

const (
	insertOutputSQL = `INSERT INTO output_log (id, occurred_at, message) VALUES (?, ?, ?)`
	selectOutputSQL = `SELECT seq, id, occurred_at, message FROM output_log`
	clearOutputSQL  = `DELETE FROM output_log`
)

// Append inserts a new entry and returns it with its sequence number.
// Empty ID and zero OccurredAt are filled in.
func (r *OutputSQLite) Append(ctx context.Context, e models.OutputLogEntry) (models.OutputLogEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertOutputSQL, e.ID, e.OccurredAt, e.Message)
	if err != nil {
		return models.OutputLogEntry{}, fmt.Errorf("insert output entry: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return models.OutputLogEntry{}, fmt.Errorf("get seq for output entry %s: %w", e.ID, err)
	}
	e.Seq = seq
	return e, nil
}

// List returns entries within [from, to] (inclusive, zero means unbounded)
// in insertion order.
func (r *OutputSQLite) List(ctx context.Context, from, to time.Time) ([]models.OutputLogEntry, error) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}

	q := selectOutputSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY seq ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select output entries: %w", err)
	}
	defer rows.Close()

	out := make([]models.OutputLogEntry, 0, 32)
	for rows.Next() {
		var e models.OutputLogEntry
		if err := rows.Scan(&e.Seq, &e.ID, &e.OccurredAt, &e.Message); err != nil {
			return nil, fmt.Errorf("scan output entry: %w", err)
		}
		e.OccurredAt = e.OccurredAt.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Clear drops every entry. Sequence numbers keep growing afterwards.
func (r *OutputSQLite) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearOutputSQL); err != nil {
		return fmt.Errorf("clear output entries: %w", err)
	}
	return nil
}
