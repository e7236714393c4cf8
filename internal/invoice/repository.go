package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("invoice not found")
	ErrExists   = errors.New("invoice already exists")
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

type IssueParams struct {
	TotalAmount   decimal.Decimal
	DueDate       *time.Time
	PaymentMethod string
}

func (r *Repository) Issue(ctx context.Context, bookingID int64, number string, p IssueParams) (*Invoice, error) {
	const q = `
INSERT INTO invoices (booking_id, invoice_number, total_amount, payment_method, due_date)
VALUES ($1, $2, $3, $4, $5)
RETURNING booking_id, invoice_number, total_amount::text, paid_amount::text, payment_state, due_date, paid_at, payment_method`
	inv := &Invoice{}
	err := r.db.QueryRow(ctx, q, bookingID, number, p.TotalAmount, p.PaymentMethod, p.DueDate).Scan(
		&inv.BookingID, &inv.Number, &inv.TotalAmount, &inv.PaidAmount,
		&inv.PaymentState, &inv.DueDate, &inv.PaidAt, &inv.PaymentMethod,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrExists
		}
		return nil, err
	}
	return inv, nil
}

type PaymentParams struct {
	PaidAmount    decimal.Decimal
	PaymentState  PaymentState
	PaidAt        *time.Time
	PaymentMethod string
}

func (r *Repository) RecordPayment(ctx context.Context, bookingID int64, p PaymentParams) (*Invoice, error) {
	const q = `
UPDATE invoices
SET paid_amount = $1, payment_state = $2, paid_at = $3,
    payment_method = CASE WHEN $4 <> '' THEN $4 ELSE payment_method END
WHERE booking_id = $5
RETURNING booking_id, invoice_number, total_amount::text, paid_amount::text, payment_state, due_date, paid_at, payment_method`
	inv := &Invoice{}
	err := r.db.QueryRow(ctx, q, p.PaidAmount, string(p.PaymentState), p.PaidAt, p.PaymentMethod, bookingID).Scan(
		&inv.BookingID, &inv.Number, &inv.TotalAmount, &inv.PaidAmount,
		&inv.PaymentState, &inv.DueDate, &inv.PaidAt, &inv.PaymentMethod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *Repository) GetByBooking(ctx context.Context, bookingID int64) (*Invoice, error) {
	const q = `
SELECT booking_id, invoice_number, total_amount::text, paid_amount::text, payment_state, due_date, paid_at, payment_method
FROM invoices
WHERE booking_id = $1`
	inv := &Invoice{}
	err := r.db.QueryRow(ctx, q, bookingID).Scan(
		&inv.BookingID, &inv.Number, &inv.TotalAmount, &inv.PaidAmount,
		&inv.PaymentState, &inv.DueDate, &inv.PaidAt, &inv.PaymentMethod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}
