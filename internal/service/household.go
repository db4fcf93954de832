// Package service holds the screen-facing household state. Each signed-in
// member session owns its own Household: the list collection, the expense
// ledger and the mood exchange live only in that session's memory.
package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/duetapp/duet/internal/ledger"
	"github.com/duetapp/duet/internal/lists"
	"github.com/duetapp/duet/internal/models"
	"github.com/duetapp/duet/internal/signals"
)

// Household is one session's in-memory state. Domain operations are
// synchronous and run to completion; the mutex only serializes concurrent
// HTTP requests onto that single-threaded model.
type Household struct {
	mu       sync.Mutex
	board    *lists.Board
	ledger   *ledger.Ledger
	exchange *signals.Exchange
	logger   *slog.Logger
	now      func() time.Time
}

// NewHousehold creates a session seeded with the starter lists and expenses.
func NewHousehold(logger *slog.Logger) *Household {
	if logger == nil {
		logger = slog.Default()
	}
	return &Household{
		board:    lists.NewBoard(SeedLists()...),
		ledger:   ledger.NewLedger(SeedExpenses()...),
		exchange: signals.NewExchange(models.MoodGood, logger),
		logger:   logger,
		now:      time.Now,
	}
}

// ListStats is the stats row shown above a list's items.
type ListStats struct {
	Total     int
	Completed int
	Yours     int
	Partners  int
}

// ListDetail is everything the list detail screen renders: the list, the
// (possibly filtered) items, live stats and the recency label.
type ListDetail struct {
	List    models.List
	Items   []models.Item
	Stats   ListStats
	Recency string
}

// Lists returns all lists in display order.
func (h *Household) Lists() []models.List {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.board.Lists()
}

// CreateList adds a new empty list to the collection.
func (h *Household) CreateList(title string, kind models.ListKind) (models.List, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	l, err := h.board.Create(title, kind)
	if err != nil {
		return models.List{}, err
	}
	h.logger.Info("List created", "list_id", l.ID, "kind", l.Kind)
	return l, nil
}

// ListDetail returns the detail view of one list, filtering items by query.
func (h *Household) ListDetail(listID, query string) (ListDetail, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	l, err := h.board.Get(listID)
	if err != nil {
		return ListDetail{}, err
	}
	return h.detail(l, query), nil
}

// AddItem appends a new item to a list and returns the refreshed detail.
func (h *Household) AddItem(listID, title string, assignToSelf bool) (ListDetail, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	l, err := h.board.AddItem(listID, title, assignToSelf)
	if err != nil {
		return ListDetail{}, err
	}
	h.logger.Info("Item added", "list_id", listID, "assigned_to_self", assignToSelf)
	return h.detail(l, ""), nil
}

// ToggleItem flips one item's completion flag.
func (h *Household) ToggleItem(listID, itemID string) (ListDetail, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	l, err := h.board.ToggleItem(listID, itemID)
	if err != nil {
		return ListDetail{}, err
	}
	return h.detail(l, ""), nil
}

// CycleAssignment advances one item's assignee through the fixed cycle.
func (h *Household) CycleAssignment(listID, itemID string) (ListDetail, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	l, err := h.board.CycleAssignment(listID, itemID)
	if err != nil {
		return ListDetail{}, err
	}
	return h.detail(l, ""), nil
}

func (h *Household) detail(l models.List, query string) ListDetail {
	return ListDetail{
		List:  l,
		Items: lists.FilterItems(l, query),
		Stats: ListStats{
			Total:     l.ItemCount(),
			Completed: l.CompletedCount(),
			Yours:     l.AssignedCount(models.You),
			Partners:  l.AssignedCount(models.Partner),
		},
		Recency: lists.FormatRecency(l.UpdatedAt, h.now()),
	}
}

// Expenses returns all expenses, most recent first.
func (h *Household) Expenses() []models.Expense {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ledger.Expenses()
}

// AddExpense validates and records a new expense.
func (h *Household) AddExpense(title, amount string, category models.Category, paidBy models.Payer) (models.Expense, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, err := h.ledger.Add(title, amount, category, paidBy)
	if err != nil {
		return models.Expense{}, err
	}
	h.logger.Info("Expense recorded", "expense_id", e.ID, "amount", e.Amount.String(), "paid_by", e.PaidBy)
	return e, nil
}

// Settlement recomputes the even-split settlement over the current ledger.
func (h *Household) Settlement() models.Settlement {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ledger.Settlement()
}

// CategoryTotals aggregates spend per category for the budget breakdown.
func (h *Household) CategoryTotals() []ledger.CategoryTotal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ledger.CategoryTotals()
}

// SendSignal sends a fire-and-forget emotion signal to the partner.
func (h *Household) SendSignal(kind models.SignalKind) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exchange.SendSignal(kind)
}

// SendMessage sends a fire-and-forget message to the partner.
func (h *Household) SendMessage(text string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exchange.SendMessage(text)
}

// SetMood sets the acting user's mood.
func (h *Household) SetMood(m models.Mood) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exchange.SetMood(m)
}

// Moods returns the acting user's and the partner's current moods.
func (h *Household) Moods() (yours, partners models.Mood) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exchange.YourMood(), h.exchange.PartnerMood()
}
