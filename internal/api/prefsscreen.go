package api

import (
	"net/http"

	"github.com/duetapp/duet/internal/middleware"
	"github.com/duetapp/duet/internal/prefs"
)

type themeResponse struct {
	Theme string `json:"theme"`
}

func (h *Handler) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	t := h.prefs.Theme(r.Context(), middleware.GetUserID(r.Context()))
	h.writeJSON(w, http.StatusOK, themeResponse{Theme: string(t)})
}

type setThemeRequest struct {
	Theme string `json:"theme"`
}

func (h *Handler) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req setThemeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.prefs.SetTheme(r.Context(), middleware.GetUserID(r.Context()), prefs.Theme(req.Theme)); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, themeResponse{Theme: req.Theme})
}

type planResponse struct {
	Plan string `json:"plan"`
}

func (h *Handler) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	p := h.prefs.Plan(r.Context(), middleware.GetUserID(r.Context()))
	h.writeJSON(w, http.StatusOK, planResponse{Plan: string(p)})
}

type setPlanRequest struct {
	Plan string `json:"plan"`
}

func (h *Handler) handleSetPlan(w http.ResponseWriter, r *http.Request) {
	var req setPlanRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.prefs.SetPlan(r.Context(), middleware.GetUserID(r.Context()), prefs.Plan(req.Plan)); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, planResponse{Plan: req.Plan})
}
