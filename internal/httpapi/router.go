package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"alamosclean/internal/admin"
	"alamosclean/internal/api"
	"alamosclean/internal/auth"
	"alamosclean/internal/booking"
	"alamosclean/internal/history"
	"alamosclean/internal/invoice"
	"alamosclean/internal/progress"
	"alamosclean/internal/user"
	"alamosclean/pkg/config"
)

type Dependencies struct {
	Cfg config.Config
	DB  *pgxpool.Pool
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	usersRepo := user.NewRepository(deps.DB)
	authHandlers := auth.Handlers{
		Cfg:   deps.Cfg,
		Users: usersRepo,
	}
	bookingRepo := booking.NewRepository(deps.DB)
	bookingHandlers := booking.Handlers{
		DB:       deps.DB,
		Bookings: bookingRepo,
	}
	adminHandlers := admin.Handlers{
		DB:       deps.DB,
		Bookings: bookingRepo,
		History:  history.NewRepository(deps.DB),
		Progress: progress.NewRepository(deps.DB),
		Invoices: invoice.NewRepository(deps.DB),
	}

	r.Route("/api", func(r chi.Router) {
		// The frontend is served from its own origin and sends the session
		// cookie cross-site, so the whole API carries the CORS allowlist.
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedOrigins: deps.Cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-Admin-Token"},
			MaxAgeSeconds:  600,
		}))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandlers.Register)
			r.Post("/login", authHandlers.Login)
			r.Post("/logout", authHandlers.Logout)
			r.Get("/session", authHandlers.Session)
		})

		// Booking endpoints (caller-scoped)
		r.Group(func(r chi.Router) {
			r.Use(api.SessionAuth(deps.Cfg, usersRepo))

			r.Post("/bookings", bookingHandlers.Schedule)
			r.Get("/bookings", bookingHandlers.ListMine)
			r.Put("/bookings/{id}/cancel", bookingHandlers.Cancel)
		})

		// Operator endpoints (token-gated)
		r.Route("/admin", func(r chi.Router) {
			r.Use(api.AdminAuth(deps.Cfg))

			r.Get("/bookings/{id}", adminHandlers.Get)
			r.Delete("/bookings/{id}", adminHandlers.Delete)
			r.Patch("/bookings/{id}/state", adminHandlers.PatchState)
			r.Post("/bookings/{id}/completion", adminHandlers.CreateCompletion)
			r.Put("/bookings/{id}/progress", adminHandlers.PutProgress)
			r.Post("/bookings/{id}/invoice", adminHandlers.IssueInvoice)
			r.Put("/bookings/{id}/invoice/payment", adminHandlers.RecordPayment)
		})
	})

	return r
}
