// Package history persists completion records: the 1:1 report written once a
// booking finishes (times, optional client rating, comments, work report).
package history

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("completion record not found")
	ErrExists   = errors.New("completion record already exists")
)

type Record struct {
	BookingID      int64     `json:"booking_id"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	Rating         *int      `json:"rating"`
	ClientComments string    `json:"client_comments,omitempty"`
	WorkReport     string    `json:"work_report,omitempty"`
}

type CreateParams struct {
	StartedAt      time.Time
	FinishedAt     time.Time
	Rating         *int
	ClientComments string
	WorkReport     string
}

func (p CreateParams) Validate() error {
	if p.FinishedAt.Before(p.StartedAt) {
		return errors.New("finished_at must not precede started_at")
	}
	if p.Rating != nil && (*p.Rating < 1 || *p.Rating > 5) {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts the record inside the caller's transaction so it shares the
// booking's row lock.
func Create(ctx context.Context, tx pgx.Tx, bookingID int64, p CreateParams) (*Record, error) {
	const q = `
INSERT INTO completion_records (booking_id, started_at, finished_at, rating, client_comments, work_report)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING booking_id, started_at, finished_at, rating, client_comments, work_report`
	rec := &Record{}
	err := tx.QueryRow(ctx, q,
		bookingID, p.StartedAt, p.FinishedAt, p.Rating, p.ClientComments, p.WorkReport,
	).Scan(&rec.BookingID, &rec.StartedAt, &rec.FinishedAt, &rec.Rating, &rec.ClientComments, &rec.WorkReport)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrExists
		}
		return nil, err
	}
	return rec, nil
}

func (r *Repository) GetByBooking(ctx context.Context, bookingID int64) (*Record, error) {
	const q = `
SELECT booking_id, started_at, finished_at, rating, client_comments, work_report
FROM completion_records
WHERE booking_id = $1`
	rec := &Record{}
	err := r.db.QueryRow(ctx, q, bookingID).Scan(
		&rec.BookingID, &rec.StartedAt, &rec.FinishedAt, &rec.Rating, &rec.ClientComments, &rec.WorkReport,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}
