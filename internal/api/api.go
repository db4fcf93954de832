// Package api exposes the presentation boundary as a JSON-over-HTTP facade.
// The handlers are thin: decode input, call the session's domain operation,
// encode the refreshed view. All domain errors are recoverable and map to
// 4xx statuses for inline display on screen.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/duetapp/duet/internal/auth"
	"github.com/duetapp/duet/internal/ledger"
	"github.com/duetapp/duet/internal/lists"
	"github.com/duetapp/duet/internal/middleware"
	"github.com/duetapp/duet/internal/prefs"
	"github.com/duetapp/duet/internal/service"
	"github.com/duetapp/duet/internal/signals"
)

// Handler carries the collaborators every endpoint needs.
type Handler struct {
	sessions      *service.Manager
	prefs         *prefs.Service
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// New creates the API handler.
func New(sessions *service.Manager, prefService *prefs.Service, authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		sessions:      sessions,
		prefs:         prefService,
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Routes returns the full API route tree. Everything under /api except the
// auth endpoints requires a Bearer token.
func (h *Handler) Routes() http.Handler {
	protected := http.NewServeMux()
	protected.HandleFunc("GET /api/lists", h.handleLists)
	protected.HandleFunc("POST /api/lists", h.handleCreateList)
	protected.HandleFunc("GET /api/lists/{id}", h.handleListDetail)
	protected.HandleFunc("POST /api/lists/{id}/items", h.handleAddItem)
	protected.HandleFunc("POST /api/lists/{id}/items/{itemID}/toggle", h.handleToggleItem)
	protected.HandleFunc("POST /api/lists/{id}/items/{itemID}/assign", h.handleCycleAssignment)
	protected.HandleFunc("GET /api/expenses", h.handleExpenses)
	protected.HandleFunc("POST /api/expenses", h.handleAddExpense)
	protected.HandleFunc("GET /api/expenses/settlement", h.handleSettlement)
	protected.HandleFunc("GET /api/expenses/categories", h.handleCategoryTotals)
	protected.HandleFunc("POST /api/signals", h.handleSendSignal)
	protected.HandleFunc("POST /api/messages", h.handleSendMessage)
	protected.HandleFunc("GET /api/mood", h.handleMoods)
	protected.HandleFunc("PUT /api/mood", h.handleSetMood)
	protected.HandleFunc("GET /api/prefs/theme", h.handleGetTheme)
	protected.HandleFunc("PUT /api/prefs/theme", h.handleSetTheme)
	protected.HandleFunc("GET /api/prefs/plan", h.handleGetPlan)
	protected.HandleFunc("PUT /api/prefs/plan", h.handleSetPlan)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.Handle("/api/", middleware.RequireAuth(h.jwtManager, protected))
	return mux
}

// session returns the household session for the authenticated member.
func (h *Handler) session(r *http.Request) *service.Household {
	return h.sessions.Session(middleware.GetUserID(r.Context()))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps a domain error onto an HTTP status: missing ids are 404,
// rejected input is 400, anything else is 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, lists.ErrListNotFound),
		errors.Is(err, lists.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, lists.ErrEmptyTitle),
		errors.Is(err, lists.ErrUnknownKind),
		errors.Is(err, ledger.ErrEmptyTitle),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrUnknownPayer),
		errors.Is(err, ledger.ErrUnknownCategory),
		errors.Is(err, signals.ErrUnknownKind),
		errors.Is(err, signals.ErrUnknownMood),
		errors.Is(err, signals.ErrEmptyMessage),
		errors.Is(err, prefs.ErrInvalidTheme),
		errors.Is(err, prefs.ErrInvalidPlan):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", "error", err)
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
