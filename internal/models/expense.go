package models

import (
	"fmt"
	"time"
)

// Money is a currency amount in integer cents. Keeping amounts in minor
// units avoids binary floating point drift over long expense histories;
// conversion to dollars happens only at the formatting boundary.
type Money int64

// Float64 returns the amount in major units (dollars).
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// String formats the amount with a dollar sign and exactly two fractional
// digits, e.g. "$12.50" or "-$5.00".
func (m Money) String() string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s$%d.%02d", sign, m/100, m%100)
}

// Abs returns the non-negative magnitude of the amount.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// Category tags an expense for presentation. It has no behavioral effect.
type Category string

const (
	CategoryGroceries     Category = "Groceries"
	CategoryFood          Category = "Food"
	CategorySubscriptions Category = "Subscriptions"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryGroceries, CategoryFood, CategorySubscriptions,
		CategoryUtilities, CategoryEntertainment, CategoryOther:
		return true
	}
	return false
}

// Payer identifies which of the two members paid an expense. The household
// is a closed two-person model; there is no third party.
type Payer string

const (
	PaidByYou     Payer = "You"
	PaidByPartner Payer = "Partner"
)

// Valid reports whether p is one of the two recognized parties.
func (p Payer) Valid() bool {
	return p == PaidByYou || p == PaidByPartner
}

// Expense is a single recorded outlay. Expenses are immutable once recorded;
// there is no edit or delete.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Title is the free-text description (e.g., "Grocery Shopping").
	Title string

	// Amount is the recorded amount in cents.
	Amount Money

	// Date is the creation date at day granularity, used for display
	// grouping. No time-of-day component is retained.
	Date time.Time

	// Category tags the expense for the budget breakdown.
	Category Category

	// PaidBy is the member who paid.
	PaidBy Payer
}

// Settlement is the derived who-owes-whom computation under an even split.
// It is recomputed from the ledger on every read and never stored.
type Settlement struct {
	// Total is the sum of all recorded expenses.
	Total Money

	// PaidByYou and PaidByPartner are the per-payer sums.
	// PaidByYou + PaidByPartner == Total holds exactly.
	PaidByYou     Money
	PaidByPartner Money

	// FairShare is half the total, the even-split baseline. An odd-cent
	// total rounds the half cent down.
	FairShare Money

	// Balance is PaidByYou - FairShare. Positive means the partner owes
	// the user; negative means the user owes the partner.
	Balance Money
}
