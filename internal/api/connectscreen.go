package api

import (
	"net/http"

	"github.com/duetapp/duet/internal/models"
)

type sendSignalRequest struct {
	Kind string `json:"kind"`
}

func (h *Handler) handleSendSignal(w http.ResponseWriter, r *http.Request) {
	var req sendSignalRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.session(r).SendSignal(models.SignalKind(req.Kind)); err != nil {
		h.writeError(w, err)
		return
	}
	// Fire-and-forget: accepted means sent, nothing more is promised.
	w.WriteHeader(http.StatusAccepted)
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.session(r).SendMessage(req.Text); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

type moodsResponse struct {
	Yours    string `json:"yours,omitempty"`
	Partners string `json:"partners"`
}

func (h *Handler) handleMoods(w http.ResponseWriter, r *http.Request) {
	yours, partners := h.session(r).Moods()
	h.writeJSON(w, http.StatusOK, moodsResponse{Yours: string(yours), Partners: string(partners)})
}

type setMoodRequest struct {
	Mood string `json:"mood"`
}

func (h *Handler) handleSetMood(w http.ResponseWriter, r *http.Request) {
	var req setMoodRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.session(r).SetMood(models.Mood(req.Mood)); err != nil {
		h.writeError(w, err)
		return
	}
	yours, partners := h.session(r).Moods()
	h.writeJSON(w, http.StatusOK, moodsResponse{Yours: string(yours), Partners: string(partners)})
}
