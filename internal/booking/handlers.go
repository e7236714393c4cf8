package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"alamosclean/internal/api"
	"alamosclean/pkg/db"
	"alamosclean/pkg/logging"
)

type Handlers struct {
	DB       *pgxpool.Pool
	Bookings *Repository
}

// Schedule creates a pending booking for the authenticated caller.
func (h Handlers) Schedule(w http.ResponseWriter, r *http.Request) {
	u := api.UserFromContext(r.Context())
	if u == nil {
		api.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	params, verr := req.Validate()
	if verr != nil {
		api.WriteError(w, http.StatusBadRequest, verr.Message)
		return
	}

	b, err := h.Bookings.Create(r.Context(), u.ID, params)
	if err != nil {
		logging.ErrorLogger.Errorf("booking create failed user=%d: %v", u.ID, err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	api.WriteSuccess(w, "service scheduled successfully", map[string]any{
		"booking": b.Render(),
	})
}

// ListMine returns all bookings owned by the caller, newest first.
func (h Handlers) ListMine(w http.ResponseWriter, r *http.Request) {
	u := api.UserFromContext(r.Context())
	if u == nil {
		api.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	items, err := h.Bookings.ListByOwner(r.Context(), u.ID)
	if err != nil {
		logging.ErrorLogger.Errorf("booking list failed user=%d: %v", u.ID, err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	views := make([]View, 0, len(items))
	for i := range items {
		views = append(views, items[i].RenderWithCreated())
	}
	api.WriteSuccess(w, "", map[string]any{
		"bookings": views,
		"total":    len(views),
	})
}

// Cancel moves a caller-owned booking to cancelled. The state check and write
// share a row lock, so concurrent cancels cannot both pass the terminal check.
// A booking owned by someone else is reported exactly like a missing one.
func (h Handlers) Cancel(w http.ResponseWriter, r *http.Request) {
	u := api.UserFromContext(r.Context())
	if u == nil {
		api.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}

	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		b, err := GetForUpdate(r.Context(), tx, u.ID, id)
		if err != nil {
			return err
		}

		if b.State.Terminal() {
			api.WriteError(w, http.StatusBadRequest, "cannot cancel a completed or already cancelled service")
			return pgx.ErrTxCommitRollback
		}

		return UpdateState(r.Context(), tx, b.ID, StateCancelled)
	})

	if err != nil {
		// The sentinel means the response was already written inside the tx.
		if errors.Is(err, pgx.ErrTxCommitRollback) {
			return
		}
		if errors.Is(err, pgx.ErrNoRows) {
			api.WriteError(w, http.StatusNotFound, "booking not found")
			return
		}
		logging.ErrorLogger.Errorf("booking cancel failed user=%d id=%d: %v", u.ID, id, err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	api.WriteSuccess(w, "service cancelled successfully", nil)
}
