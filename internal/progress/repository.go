// Package progress persists the operational tracking record attached to an
// in-flight booking. These rows are written by crews/dispatch, never computed
// here; the public API only ever reads the booking itself.
package progress

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("progress record not found")

type Record struct {
	BookingID       int64      `json:"booking_id"`
	AssignedCrew    string     `json:"assigned_crew"`
	ProgressPct     int        `json:"progress_pct"`
	CompletedTasks  []string   `json:"completed_tasks"`
	CurrentLocation string     `json:"current_location,omitempty"`
	EstimatedFinish *time.Time `json:"estimated_finish"`
}

type UpsertParams struct {
	AssignedCrew    string
	ProgressPct     int
	CompletedTasks  []string
	CurrentLocation string
	EstimatedFinish *time.Time
}

func (p UpsertParams) Validate() error {
	if p.ProgressPct < 0 || p.ProgressPct > 100 {
		return errors.New("progress_pct must be between 0 and 100")
	}
	return nil
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Upsert(ctx context.Context, bookingID int64, p UpsertParams) (*Record, error) {
	const q = `
INSERT INTO progress_records (booking_id, assigned_crew, progress_pct, completed_tasks, current_location, estimated_finish)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (booking_id) DO UPDATE SET
  assigned_crew = EXCLUDED.assigned_crew,
  progress_pct = EXCLUDED.progress_pct,
  completed_tasks = EXCLUDED.completed_tasks,
  current_location = EXCLUDED.current_location,
  estimated_finish = EXCLUDED.estimated_finish
RETURNING booking_id, assigned_crew, progress_pct, completed_tasks, current_location, estimated_finish`
	tasks := p.CompletedTasks
	if tasks == nil {
		tasks = []string{}
	}
	rec := &Record{}
	err := r.db.QueryRow(ctx, q,
		bookingID, p.AssignedCrew, p.ProgressPct, tasks, p.CurrentLocation, p.EstimatedFinish,
	).Scan(&rec.BookingID, &rec.AssignedCrew, &rec.ProgressPct, &rec.CompletedTasks, &rec.CurrentLocation, &rec.EstimatedFinish)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *Repository) GetByBooking(ctx context.Context, bookingID int64) (*Record, error) {
	const q = `
SELECT booking_id, assigned_crew, progress_pct, completed_tasks, current_location, estimated_finish
FROM progress_records
WHERE booking_id = $1`
	rec := &Record{}
	err := r.db.QueryRow(ctx, q, bookingID).Scan(
		&rec.BookingID, &rec.AssignedCrew, &rec.ProgressPct, &rec.CompletedTasks, &rec.CurrentLocation, &rec.EstimatedFinish,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}
