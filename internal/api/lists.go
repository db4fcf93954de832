package api

import (
	"net/http"
	"time"

	"github.com/duetapp/duet/internal/lists"
	"github.com/duetapp/duet/internal/models"
)

func (h *Handler) handleLists(w http.ResponseWriter, r *http.Request) {
	all := h.session(r).Lists()
	now := time.Now()
	out := make([]listSummary, len(all))
	for i, l := range all {
		out[i] = toListSummary(l, lists.FormatRecency(l.UpdatedAt, now))
	}
	h.writeJSON(w, http.StatusOK, out)
}

type createListRequest struct {
	Title string `json:"title"`
	Kind  string `json:"kind"`
}

func (h *Handler) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if !h.decode(w, r, &req) {
		return
	}
	l, err := h.session(r).CreateList(req.Title, models.ListKind(req.Kind))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toListSummary(l, lists.FormatRecency(l.UpdatedAt, time.Now())))
}

func (h *Handler) handleListDetail(w http.ResponseWriter, r *http.Request) {
	d, err := h.session(r).ListDetail(r.PathValue("id"), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toListDetail(d))
}

type addItemRequest struct {
	Title      string `json:"title"`
	AssignToMe bool   `json:"assign_to_me"`
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	d, err := h.session(r).AddItem(r.PathValue("id"), req.Title, req.AssignToMe)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toListDetail(d))
}

func (h *Handler) handleToggleItem(w http.ResponseWriter, r *http.Request) {
	d, err := h.session(r).ToggleItem(r.PathValue("id"), r.PathValue("itemID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toListDetail(d))
}

func (h *Handler) handleCycleAssignment(w http.ResponseWriter, r *http.Request) {
	d, err := h.session(r).CycleAssignment(r.PathValue("id"), r.PathValue("itemID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toListDetail(d))
}
