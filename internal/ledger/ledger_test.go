package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/duetapp/duet/internal/models"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.Money
		wantErr bool
	}{
		{name: "whole dollars", input: "20", want: 2000},
		{name: "two decimals", input: "87.50", want: 8750},
		{name: "one decimal expands to cents", input: "12.5", want: 1250},
		{name: "leading dollar sign", input: "$9.99", want: 999},
		{name: "surrounding whitespace", input: " 3.25 ", want: 325},
		{name: "fraction only", input: ".50", want: 50},
		{name: "non-numeric", input: "abc", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "zero with decimals", input: "0.00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "three fraction digits", input: "1.234", wantErr: true},
		{name: "trailing dot", input: "12.", wantErr: true},
		{name: "bare dot", input: ".", wantErr: true},
		{name: "embedded letters", input: "12a.50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %d cents, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestComputeSettlementScenario(t *testing.T) {
	// 87.50 paid by You, 65.20 paid by Partner:
	// total 152.70, fair share 76.35, partner owes 11.15.
	expenses := []models.Expense{
		{Amount: 8750, PaidBy: models.PaidByYou},
		{Amount: 6520, PaidBy: models.PaidByPartner},
	}

	s := ComputeSettlement(expenses)

	if s.Total != 15270 {
		t.Errorf("Total = %d, want 15270", s.Total)
	}
	if s.PaidByYou != 8750 {
		t.Errorf("PaidByYou = %d, want 8750", s.PaidByYou)
	}
	if s.PaidByPartner != 6520 {
		t.Errorf("PaidByPartner = %d, want 6520", s.PaidByPartner)
	}
	if s.FairShare != 7635 {
		t.Errorf("FairShare = %d, want 7635", s.FairShare)
	}
	if s.Balance != 1115 {
		t.Errorf("Balance = %d, want 1115", s.Balance)
	}
	if s.Balance.String() != "$11.15" {
		t.Errorf("Balance.String() = %q, want $11.15", s.Balance.String())
	}
}

func TestComputeSettlementEmpty(t *testing.T) {
	s := ComputeSettlement(nil)
	if s.Total != 0 || s.PaidByYou != 0 || s.PaidByPartner != 0 || s.FairShare != 0 || s.Balance != 0 {
		t.Errorf("empty ledger settlement = %+v, want all zeros", s)
	}
}

func TestSettlementInvariant(t *testing.T) {
	tests := []struct {
		name     string
		expenses []models.Expense
	}{
		{name: "empty", expenses: nil},
		{name: "single payer", expenses: []models.Expense{
			{Amount: 1499, PaidBy: models.PaidByYou},
			{Amount: 8950, PaidBy: models.PaidByYou},
		}},
		{name: "both payers", expenses: []models.Expense{
			{Amount: 8750, PaidBy: models.PaidByYou},
			{Amount: 6520, PaidBy: models.PaidByPartner},
			{Amount: 2600, PaidBy: models.PaidByPartner},
		}},
		{name: "odd cent total", expenses: []models.Expense{
			{Amount: 1, PaidBy: models.PaidByYou},
			{Amount: 2, PaidBy: models.PaidByPartner},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ComputeSettlement(tt.expenses)
			// Exact in cents for every reachable state.
			if s.PaidByYou+s.PaidByPartner != s.Total {
				t.Errorf("PaidByYou (%d) + PaidByPartner (%d) != Total (%d)", s.PaidByYou, s.PaidByPartner, s.Total)
			}
			if s.Balance != s.PaidByYou-s.FairShare {
				t.Errorf("Balance = %d, want PaidByYou - FairShare = %d", s.Balance, s.PaidByYou-s.FairShare)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		amount   string
		category models.Category
		paidBy   models.Payer
		wantErr  error
	}{
		{name: "valid", title: "Dinner", amount: "42.00", category: models.CategoryFood, paidBy: models.PaidByYou},
		{name: "one decimal stored as cents", title: "Coffee", amount: "12.5", category: models.CategoryFood, paidBy: models.PaidByPartner},
		{name: "empty title", title: "  ", amount: "10", category: models.CategoryOther, paidBy: models.PaidByYou, wantErr: ErrEmptyTitle},
		{name: "bad amount", title: "Dinner", amount: "abc", category: models.CategoryFood, paidBy: models.PaidByYou, wantErr: ErrInvalidAmount},
		{name: "negative amount", title: "Dinner", amount: "-5", category: models.CategoryFood, paidBy: models.PaidByYou, wantErr: ErrInvalidAmount},
		{name: "unknown payer", title: "Dinner", amount: "10", category: models.CategoryFood, paidBy: "Alice", wantErr: ErrUnknownPayer},
		{name: "unknown category", title: "Dinner", amount: "10", category: "Travel", paidBy: models.PaidByYou, wantErr: ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger()
			e, err := l.Add(tt.title, tt.amount, tt.category, tt.paidBy)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Add error = %v, want %v", err, tt.wantErr)
				}
				if len(l.Expenses()) != 0 {
					t.Error("rejected add must leave the ledger unchanged")
				}
				return
			}
			if err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			if e.ID == "" {
				t.Error("expected expense ID to be generated")
			}
			if tt.amount == "12.5" && e.Amount != 1250 {
				t.Errorf("Amount = %d cents, want 1250", e.Amount)
			}
			if hh, mm, ss := e.Date.Clock(); hh != 0 || mm != 0 || ss != 0 {
				t.Errorf("Date keeps a time-of-day component: %v", e.Date)
			}
		})
	}
}

func TestAddPrepends(t *testing.T) {
	l := NewLedger(models.Expense{ID: "old", Title: "Old", Amount: 100, PaidBy: models.PaidByYou, Category: models.CategoryOther, Date: time.Now()})

	e, err := l.Add("New", "5.00", models.CategoryOther, models.PaidByPartner)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got := l.Expenses()
	if len(got) != 2 {
		t.Fatalf("ledger has %d expenses, want 2", len(got))
	}
	if got[0].ID != e.ID {
		t.Errorf("most recent expense is %q, want the newly added %q", got[0].ID, e.ID)
	}
}

func TestCategoryTotals(t *testing.T) {
	l := NewLedger(
		models.Expense{Amount: 8750, Category: models.CategoryGroceries, PaidBy: models.PaidByYou},
		models.Expense{Amount: 1250, Category: models.CategoryGroceries, PaidBy: models.PaidByPartner},
		models.Expense{Amount: 2600, Category: models.CategoryEntertainment, PaidBy: models.PaidByPartner},
	)

	totals := l.CategoryTotals()
	if len(totals) != 2 {
		t.Fatalf("got %d categories, want 2", len(totals))
	}
	if totals[0].Category != models.CategoryGroceries || totals[0].Total != 10000 {
		t.Errorf("totals[0] = %+v, want Groceries $100.00", totals[0])
	}
	if totals[1].Category != models.CategoryEntertainment || totals[1].Total != 2600 {
		t.Errorf("totals[1] = %+v, want Entertainment $26.00", totals[1])
	}

	// Category totals must sum to the settlement total.
	var sum models.Money
	for _, ct := range totals {
		sum += ct.Total
	}
	if sum != l.Settlement().Total {
		t.Errorf("category totals sum to %d, settlement total is %d", sum, l.Settlement().Total)
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		cents models.Money
		want  string
	}{
		{cents: 15270, want: "$152.70"},
		{cents: 1250, want: "$12.50"},
		{cents: 5, want: "$0.05"},
		{cents: 0, want: "$0.00"},
		{cents: -500, want: "-$5.00"},
	}

	for _, tt := range tests {
		if got := tt.cents.String(); got != tt.want {
			t.Errorf("Money(%d).String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
