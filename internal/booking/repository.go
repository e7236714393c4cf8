package booking

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Booking struct {
	ID             int64
	UserID         int64
	ServiceType    ServiceType
	Description    string
	ServiceAddress string
	ScheduledAt    time.Time
	State          State
	EstimatedPrice decimal.NullDecimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateParams struct {
	ServiceType    ServiceType
	Description    string
	ServiceAddress string
	ScheduledAt    time.Time
	EstimatedPrice decimal.NullDecimal
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const bookingColumns = `
id, user_id, service_type, description, service_address, scheduled_at,
state, estimated_price::text, created_at, updated_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	b := &Booking{}
	if err := row.Scan(
		&b.ID, &b.UserID, &b.ServiceType, &b.Description, &b.ServiceAddress,
		&b.ScheduledAt, &b.State, &b.EstimatedPrice, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return b, nil
}

// Create inserts a pending booking owned by userID. Identity assignment is
// left to the store.
func (r *Repository) Create(ctx context.Context, userID int64, p CreateParams) (*Booking, error) {
	const q = `
INSERT INTO bookings (user_id, service_type, description, service_address, scheduled_at, estimated_price)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + bookingColumns
	return scanBooking(r.db.QueryRow(ctx, q,
		userID, string(p.ServiceType), p.Description, p.ServiceAddress, p.ScheduledAt, p.EstimatedPrice,
	))
}

// ListByOwner returns every booking owned by userID, newest-created first.
func (r *Repository) ListByOwner(ctx context.Context, userID int64) ([]Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

// GetByID is the operator-side read: no owner filter.
func (r *Repository) GetByID(ctx context.Context, bookingID int64) (*Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1`
	return scanBooking(r.db.QueryRow(ctx, q, bookingID))
}

// GetForUpdate row-locks the caller's booking so a state check and the
// following state write cannot be separated by a concurrent mutation.
func GetForUpdate(ctx context.Context, tx pgx.Tx, userID, bookingID int64) (*Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE user_id = $1 AND id = $2
FOR UPDATE`
	return scanBooking(tx.QueryRow(ctx, q, userID, bookingID))
}

// GetForUpdateAny is the operator-side variant without an owner filter.
func GetForUpdateAny(ctx context.Context, tx pgx.Tx, bookingID int64) (*Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
FOR UPDATE`
	return scanBooking(tx.QueryRow(ctx, q, bookingID))
}

func UpdateState(ctx context.Context, tx pgx.Tx, bookingID int64, next State) error {
	const q = `
UPDATE bookings
SET state = $1, updated_at = NOW()
WHERE id = $2`
	_, err := tx.Exec(ctx, q, string(next), bookingID)
	return err
}

// Delete removes a booking; dependent records go with it via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, bookingID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	return err
}
