// Package httpadapter serves the campaign dashboard: server-rendered list,
// detail and form views over the campaign usecase, plus login and logout
// against the session store.
package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adboard/internal/core/port"
	"adboard/internal/session"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it holds the campaign usecase for business logic, the session store
// for authentication and a logger for structured logging. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	svc      port.CampaignUseCase
	sessions *session.Store
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Campaign routes
// sit behind the session middleware; anonymous requests are redirected to
// the login page.
func NewHandler(svc port.CampaignUseCase, sessions *session.Store, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, sessions: sessions, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/campaigns", http.StatusFound)
	})
	r.Get("/login", h.handleLoginPage)
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/campaigns", h.handleCampaignList)
		r.Get("/campaigns/new", h.handleCampaignNew)
		r.Post("/campaigns", h.handleCampaignCreate)
		r.Get("/campaigns/{id}", h.handleCampaignDetail)
		r.Get("/campaigns/{id}/edit", h.handleCampaignEdit)
		r.Post("/campaigns/{id}", h.handleCampaignUpdate)
		r.Post("/campaigns/{id}/delete", h.handleCampaignDelete)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
