package models

import "time"

// ListKind tags a list for grouping and icon/color selection on screen.
// It has no behavioral effect.
type ListKind string

const (
	KindGrocery     ListKind = "grocery"
	KindTodo        ListKind = "todo"
	KindMaintenance ListKind = "maintenance"
)

// Valid reports whether k is one of the recognized list kinds.
func (k ListKind) Valid() bool {
	switch k {
	case KindGrocery, KindTodo, KindMaintenance:
		return true
	}
	return false
}

// Assignee is the three-state assignment of an item: unassigned, the acting
// user, or the partner.
type Assignee string

const (
	Unassigned Assignee = ""
	You        Assignee = "You"
	Partner    Assignee = "Partner"
)

// Next returns the assignee that follows a in the fixed assignment cycle
// unassigned -> You -> Partner -> unassigned.
func (a Assignee) Next() Assignee {
	switch a {
	case Unassigned:
		return You
	case You:
		return Partner
	default:
		return Unassigned
	}
}

// Item is a single checkable entry within a List.
type Item struct {
	// ID is the unique identifier for the item within its list (UUID format).
	ID string

	// Title is the free-text content of the item.
	Title string

	// Completed reports whether the item has been checked off.
	Completed bool

	// AssignedTo is the member responsible for the item, or Unassigned.
	AssignedTo Assignee
}

// List is a named, ordered collection of Items. Insertion order is the
// display order.
type List struct {
	// ID is the unique identifier for the list (UUID format).
	ID string

	// Title is the display name of the list (e.g., "Grocery Shopping").
	Title string

	// Kind selects the list's icon and accent color on screen.
	Kind ListKind

	// Items are the entries of the list in display order.
	Items []Item

	// UpdatedAt is when the list last changed, shown as "Updated N days ago".
	UpdatedAt time.Time
}

// ItemCount returns the number of items. Always computed from Items, never
// stored, so it cannot drift.
func (l *List) ItemCount() int {
	return len(l.Items)
}

// CompletedCount returns the number of completed items, recomputed on every
// call.
func (l *List) CompletedCount() int {
	n := 0
	for _, it := range l.Items {
		if it.Completed {
			n++
		}
	}
	return n
}

// AssignedCount returns the number of items assigned to the given member.
func (l *List) AssignedCount(a Assignee) int {
	n := 0
	for _, it := range l.Items {
		if it.AssignedTo == a {
			n++
		}
	}
	return n
}

// Progress returns the completed fraction in [0, 1]. An empty list reports 0.
func (l *List) Progress() float64 {
	if len(l.Items) == 0 {
		return 0
	}
	return float64(l.CompletedCount()) / float64(len(l.Items))
}
