// Package admin exposes the operator endpoints that the public booking API
// deliberately leaves out: state transitions past cancellation, completion
// records, progress updates and invoicing. The whole group sits behind the
// shared admin token.
package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"alamosclean/internal/api"
	"alamosclean/internal/booking"
	"alamosclean/internal/history"
	"alamosclean/internal/invoice"
	"alamosclean/internal/progress"
	"alamosclean/pkg/db"
	"alamosclean/pkg/logging"
)

type Handlers struct {
	DB       *pgxpool.Pool
	Bookings *booking.Repository
	History  *history.Repository
	Progress *progress.Repository
	Invoices *invoice.Repository
}

func bookingID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// Get assembles the full operator view of one booking: the booking itself plus
// whichever dependent records exist.
func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}

	b, err := h.Bookings.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}

	extra := map[string]any{"booking": b.RenderWithCreated()}
	if rec, err := h.History.GetByBooking(r.Context(), id); err == nil {
		extra["completion"] = rec
	}
	if rec, err := h.Progress.GetByBooking(r.Context(), id); err == nil {
		extra["progress"] = rec
	}
	if inv, err := h.Invoices.GetByBooking(r.Context(), id); err == nil {
		extra["invoice"] = inv.Render()
	}
	api.WriteSuccess(w, "", extra)
}

// Delete removes a booking outright; the dependent completion, progress and
// invoice rows cascade with it.
func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}

	if _, err := h.Bookings.GetByID(r.Context(), id); err != nil {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}
	if err := h.Bookings.Delete(r.Context(), id); err != nil {
		logging.ErrorLogger.Errorf("admin delete failed id=%d: %v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	api.WriteSuccess(w, "booking deleted", nil)
}

type PatchStateRequest struct {
	State string `json:"state"`
}

// PatchState applies one step of the booking state machine. The check and the
// write share a row lock so concurrent transitions serialize.
func (h Handlers) PatchState(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}

	var req PatchStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	next, err := booking.ParseState(req.State)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid state")
		return
	}

	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		b, err := booking.GetForUpdateAny(r.Context(), tx, id)
		if err != nil {
			return err
		}
		if !booking.CanTransition(b.State, next) {
			api.WriteError(w, http.StatusBadRequest, "invalid state transition")
			return pgx.ErrTxCommitRollback
		}
		return booking.UpdateState(r.Context(), tx, b.ID, next)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrTxCommitRollback) {
			return
		}
		if errors.Is(err, pgx.ErrNoRows) {
			api.WriteError(w, http.StatusNotFound, "booking not found")
			return
		}
		logging.ErrorLogger.Errorf("admin state change failed id=%d: %v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	api.WriteSuccess(w, "state updated", map[string]any{
		"state": next.Label(),
	})
}

type CompletionRequest struct {
	StartedAt      string `json:"started_at"`
	FinishedAt     string `json:"finished_at"`
	Rating         *int   `json:"rating"`
	ClientComments string `json:"client_comments"`
	WorkReport     string `json:"work_report"`
}

// CreateCompletion writes the one-off completion record for a finished
// booking.
func (h Handlers) CreateCompletion(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}

	var req CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	startedAt, err := booking.ParseDateTime(req.StartedAt)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid started_at")
		return
	}
	finishedAt, err := booking.ParseDateTime(req.FinishedAt)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid finished_at")
		return
	}
	params := history.CreateParams{
		StartedAt:      startedAt,
		FinishedAt:     finishedAt,
		Rating:         req.Rating,
		ClientComments: req.ClientComments,
		WorkReport:     req.WorkReport,
	}
	if err := params.Validate(); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var rec *history.Record
	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		b, err := booking.GetForUpdateAny(r.Context(), tx, id)
		if err != nil {
			return err
		}
		if b.State != booking.StateCompleted {
			api.WriteError(w, http.StatusBadRequest, "completion records require a completed booking")
			return pgx.ErrTxCommitRollback
		}
		rec, err = history.Create(r.Context(), tx, b.ID, params)
		if errors.Is(err, history.ErrExists) {
			api.WriteError(w, http.StatusBadRequest, "completion record already exists")
			return pgx.ErrTxCommitRollback
		}
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrTxCommitRollback) {
			return
		}
		if errors.Is(err, pgx.ErrNoRows) {
			api.WriteError(w, http.StatusNotFound, "booking not found")
			return
		}
		logging.ErrorLogger.Errorf("completion record failed id=%d: %v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	api.WriteSuccess(w, "completion record created", map[string]any{
		"completion": rec,
	})
}

type ProgressRequest struct {
	AssignedCrew    string   `json:"assigned_crew"`
	ProgressPct     int      `json:"progress_pct"`
	CompletedTasks  []string `json:"completed_tasks"`
	CurrentLocation string   `json:"current_location"`
	EstimatedFinish string   `json:"estimated_finish"`
}

// PutProgress upserts the tracking record written by dispatch/crews.
func (h Handlers) PutProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}

	var req ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	var estimatedFinish *time.Time
	if req.EstimatedFinish != "" {
		t, err := booking.ParseDateTime(req.EstimatedFinish)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "invalid estimated_finish")
			return
		}
		estimatedFinish = &t
	}
	params := progress.UpsertParams{
		AssignedCrew:    req.AssignedCrew,
		ProgressPct:     req.ProgressPct,
		CompletedTasks:  req.CompletedTasks,
		CurrentLocation: req.CurrentLocation,
		EstimatedFinish: estimatedFinish,
	}
	if err := params.Validate(); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Bookings.GetByID(r.Context(), id); err != nil {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}

	rec, err := h.Progress.Upsert(r.Context(), id, params)
	if err != nil {
		logging.ErrorLogger.Errorf("progress upsert failed id=%d: %v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	api.WriteSuccess(w, "progress updated", map[string]any{
		"progress": rec,
	})
}

type IssueInvoiceRequest struct {
	TotalAmount   decimal.Decimal `json:"total_amount"`
	DueDate       string          `json:"due_date"`
	PaymentMethod string          `json:"payment_method"`
}

// IssueInvoice creates the booking's invoice with a generated number. Unlike
// the legacy booking path, this is new surface, so amounts are range-checked.
func (h Handlers) IssueInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}

	var req IssueInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.TotalAmount.IsNegative() {
		api.WriteError(w, http.StatusBadRequest, "total_amount must be non-negative")
		return
	}
	var dueDate *time.Time
	if req.DueDate != "" {
		t, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "invalid due_date, use YYYY-MM-DD")
			return
		}
		dueDate = &t
	}

	if _, err := h.Bookings.GetByID(r.Context(), id); err != nil {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}

	inv, err := h.Invoices.Issue(r.Context(), id, invoice.NewNumber(), invoice.IssueParams{
		TotalAmount:   req.TotalAmount,
		DueDate:       dueDate,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, invoice.ErrExists) {
			api.WriteError(w, http.StatusBadRequest, "invoice already exists")
			return
		}
		logging.ErrorLogger.Errorf("invoice issue failed id=%d: %v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	api.WriteSuccess(w, "invoice issued", map[string]any{
		"invoice": inv.Render(),
	})
}

type PaymentRequest struct {
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PaymentState  string          `json:"payment_state"`
	PaidAt        string          `json:"paid_at"`
	PaymentMethod string          `json:"payment_method"`
}

// RecordPayment updates the invoice's paid amount and payment state. Payments
// are bounded here: 0 <= paid <= total.
func (h Handlers) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}

	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	state, err := invoice.ParsePaymentState(req.PaymentState)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid payment state")
		return
	}
	if req.PaidAmount.IsNegative() {
		api.WriteError(w, http.StatusBadRequest, "paid_amount must be non-negative")
		return
	}
	var paidAt *time.Time
	if req.PaidAt != "" {
		t, err := booking.ParseDateTime(req.PaidAt)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "invalid paid_at")
			return
		}
		paidAt = &t
	}

	current, err := h.Invoices.GetByBooking(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "invoice not found")
			return
		}
		logging.ErrorLogger.Errorf("invoice lookup failed id=%d: %v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if req.PaidAmount.GreaterThan(current.TotalAmount) {
		api.WriteError(w, http.StatusBadRequest, "paid_amount cannot exceed total_amount")
		return
	}

	inv, err := h.Invoices.RecordPayment(r.Context(), id, invoice.PaymentParams{
		PaidAmount:    req.PaidAmount,
		PaymentState:  state,
		PaidAt:        paidAt,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		logging.ErrorLogger.Errorf("invoice payment failed id=%d: %v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	api.WriteSuccess(w, "payment recorded", map[string]any{
		"invoice": inv.Render(),
	})
}
