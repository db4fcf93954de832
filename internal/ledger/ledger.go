// Package ledger implements the shared expense ledger and the 50/50
// settlement calculator.
package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/duetapp/duet/internal/models"
)

var (
	ErrEmptyTitle      = errors.New("expense title must not be empty")
	ErrUnknownPayer    = errors.New("payer must be one of the two household members")
	ErrUnknownCategory = errors.New("unknown expense category")
)

// Ledger owns the expense collection for one session. Entries are ordered
// most recent first and are immutable once recorded.
type Ledger struct {
	expenses []models.Expense
	now      func() time.Time
}

// NewLedger creates a ledger seeded with the given expenses, which are
// assumed to already be in most-recent-first order.
func NewLedger(initial ...models.Expense) *Ledger {
	l := &Ledger{now: time.Now}
	l.expenses = append(l.expenses, initial...)
	return l
}

// Expenses returns a snapshot of all expenses, most recent first.
func (l *Ledger) Expenses() []models.Expense {
	out := make([]models.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Add validates and records a new expense. The amount is the raw user input
// string; the date is stamped at day granularity from the current time. The
// new entry is prepended so the most recent expense displays first.
func (l *Ledger) Add(title, amount string, category models.Category, paidBy models.Payer) (models.Expense, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Expense{}, ErrEmptyTitle
	}
	cents, err := ParseAmount(amount)
	if err != nil {
		return models.Expense{}, err
	}
	if !category.Valid() {
		return models.Expense{}, ErrUnknownCategory
	}
	if !paidBy.Valid() {
		return models.Expense{}, ErrUnknownPayer
	}
	now := l.now()
	e := models.Expense{
		ID:       uuid.New().String(),
		Title:    title,
		Amount:   cents,
		Date:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Category: category,
		PaidBy:   paidBy,
	}
	l.expenses = append([]models.Expense{e}, l.expenses...)
	return e, nil
}

// Settlement recomputes the even-split settlement over the current expenses.
// It is never cached; every read reflects the ledger as it stands.
func (l *Ledger) Settlement() models.Settlement {
	return ComputeSettlement(l.expenses)
}

// ComputeSettlement derives the settlement figures from an expense
// collection. The empty collection yields all zeros.
func ComputeSettlement(expenses []models.Expense) models.Settlement {
	var s models.Settlement
	for _, e := range expenses {
		s.Total += e.Amount
		switch e.PaidBy {
		case models.PaidByYou:
			s.PaidByYou += e.Amount
		case models.PaidByPartner:
			s.PaidByPartner += e.Amount
		}
	}
	s.FairShare = s.Total / 2
	s.Balance = s.PaidByYou - s.FairShare
	return s
}

// CategoryTotal is the spend aggregated under one category.
type CategoryTotal struct {
	Category models.Category
	Total    models.Money
}

// CategoryTotals aggregates spend per category in the fixed category order,
// omitting categories with no expenses.
func (l *Ledger) CategoryTotals() []CategoryTotal {
	byCat := make(map[models.Category]models.Money)
	for _, e := range l.expenses {
		byCat[e.Category] += e.Amount
	}
	order := []models.Category{
		models.CategoryGroceries,
		models.CategoryFood,
		models.CategorySubscriptions,
		models.CategoryUtilities,
		models.CategoryEntertainment,
		models.CategoryOther,
	}
	var out []CategoryTotal
	for _, c := range order {
		if total, ok := byCat[c]; ok {
			out = append(out, CategoryTotal{Category: c, Total: total})
		}
	}
	return out
}
