package api

import (
	"net/http"

	"github.com/duetapp/duet/internal/models"
)

func (h *Handler) handleExpenses(w http.ResponseWriter, r *http.Request) {
	all := h.session(r).Expenses()
	out := make([]expenseView, len(all))
	for i, e := range all {
		out[i] = toExpenseView(e)
	}
	h.writeJSON(w, http.StatusOK, out)
}

type addExpenseRequest struct {
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	PaidBy   string `json:"paid_by"`
}

func (h *Handler) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if !h.decode(w, r, &req) {
		return
	}
	e, err := h.session(r).AddExpense(req.Title, req.Amount, models.Category(req.Category), models.Payer(req.PaidBy))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toExpenseView(e))
}

func (h *Handler) handleSettlement(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, toSettlementView(h.session(r).Settlement()))
}

func (h *Handler) handleCategoryTotals(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, toCategoryTotalViews(h.session(r).CategoryTotals()))
}
