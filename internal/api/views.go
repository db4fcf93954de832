package api

import (
	"github.com/duetapp/duet/internal/ledger"
	"github.com/duetapp/duet/internal/models"
	"github.com/duetapp/duet/internal/service"
)

// listSummary is one card on the lists overview screen.
type listSummary struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Kind           string  `json:"kind"`
	ItemCount      int     `json:"item_count"`
	CompletedCount int     `json:"completed_count"`
	Progress       float64 `json:"progress"`
	Updated        string  `json:"updated"`
}

type itemView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Completed  bool   `json:"completed"`
	AssignedTo string `json:"assigned_to,omitempty"`
}

type listStatsView struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Yours     int `json:"yours"`
	Partners  int `json:"partners"`
}

// listDetailView is the list detail screen: items, stats and recency.
type listDetailView struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Kind    string        `json:"kind"`
	Updated string        `json:"updated"`
	Items   []itemView    `json:"items"`
	Stats   listStatsView `json:"stats"`
}

type expenseView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	PaidBy      string `json:"paid_by"`
}

// settlementView carries both the raw cents and display strings so screens
// never re-derive currency formatting.
type settlementView struct {
	TotalCents    int64  `json:"total_cents"`
	Total         string `json:"total"`
	PaidByYou     string `json:"paid_by_you"`
	PaidByPartner string `json:"paid_by_partner"`
	FairShare     string `json:"fair_share"`
	BalanceCents  int64  `json:"balance_cents"`
	OwedBy        string `json:"owed_by,omitempty"`
	OwedAmount    string `json:"owed_amount,omitempty"`
}

type categoryTotalView struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

func toListSummary(l models.List, recency string) listSummary {
	return listSummary{
		ID:             l.ID,
		Title:          l.Title,
		Kind:           string(l.Kind),
		ItemCount:      l.ItemCount(),
		CompletedCount: l.CompletedCount(),
		Progress:       l.Progress(),
		Updated:        recency,
	}
}

func toItemViews(items []models.Item) []itemView {
	out := make([]itemView, len(items))
	for i, it := range items {
		out[i] = itemView{
			ID:         it.ID,
			Title:      it.Title,
			Completed:  it.Completed,
			AssignedTo: string(it.AssignedTo),
		}
	}
	return out
}

func toListDetail(d service.ListDetail) listDetailView {
	return listDetailView{
		ID:      d.List.ID,
		Title:   d.List.Title,
		Kind:    string(d.List.Kind),
		Updated: d.Recency,
		Items:   toItemViews(d.Items),
		Stats: listStatsView{
			Total:     d.Stats.Total,
			Completed: d.Stats.Completed,
			Yours:     d.Stats.Yours,
			Partners:  d.Stats.Partners,
		},
	}
}

func toExpenseView(e models.Expense) expenseView {
	return expenseView{
		ID:          e.ID,
		Title:       e.Title,
		AmountCents: int64(e.Amount),
		Amount:      e.Amount.String(),
		Date:        e.Date.Format("2006-01-02"),
		Category:    string(e.Category),
		PaidBy:      string(e.PaidBy),
	}
}

func toSettlementView(s models.Settlement) settlementView {
	v := settlementView{
		TotalCents:    int64(s.Total),
		Total:         s.Total.String(),
		PaidByYou:     s.PaidByYou.String(),
		PaidByPartner: s.PaidByPartner.String(),
		FairShare:     s.FairShare.String(),
		BalanceCents:  int64(s.Balance),
	}
	switch {
	case s.Balance > 0:
		v.OwedBy = string(models.Partner)
		v.OwedAmount = s.Balance.String()
	case s.Balance < 0:
		v.OwedBy = string(models.You)
		v.OwedAmount = s.Balance.Abs().String()
	}
	return v
}

func toCategoryTotalViews(totals []ledger.CategoryTotal) []categoryTotalView {
	out := make([]categoryTotalView, len(totals))
	for i, t := range totals {
		out[i] = categoryTotalView{Category: string(t.Category), Total: t.Total.String()}
	}
	return out
}
