package api

import (
	"errors"
	"net/http"

	"github.com/duetapp/duet/internal/auth"
	"github.com/duetapp/duet/internal/models"
)

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type authResponse struct {
	User  userView `json:"user"`
	Token string   `json:"token"`
}

func toUserView(u *models.User) userView {
	return userView{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.DisplayName == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email and display_name are required"})
		return
	}

	user, err := h.authenticator.Register(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		h.logger.Warn("Registration failed", "email", req.Email, "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, auth.ErrEmailExists) {
			status = http.StatusConflict
		} else if errors.Is(err, auth.ErrWeakPassword) {
			status = http.StatusBadRequest
		}
		h.writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		h.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to create session"})
		return
	}

	h.logger.Info("Member registered", "user_id", user.ID, "email", user.Email)
	h.writeJSON(w, http.StatusCreated, authResponse{User: toUserView(user), Token: token})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: auth.ErrInvalidCredentials.Error()})
		return
	}

	user, err := h.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("Login failed", "email", req.Email)
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: auth.ErrInvalidCredentials.Error()})
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		h.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to create session"})
		return
	}

	h.logger.Info("Member logged in", "user_id", user.ID)
	h.writeJSON(w, http.StatusOK, authResponse{User: toUserView(user), Token: token})
}
