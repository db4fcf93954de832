// Package lists implements the shared list/item domain model: lists owning
// ordered items, with completion toggling, a fixed three-state assignment
// cycle, and derived progress counts.
package lists

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/duetapp/duet/internal/models"
)

var (
	ErrListNotFound = errors.New("list not found")
	ErrItemNotFound = errors.New("item not found")
	ErrEmptyTitle   = errors.New("title must not be empty")
	ErrUnknownKind  = errors.New("unknown list kind")
)

// Board owns the household's list collection for one session. All mutations
// funnel through Board methods so the stored collection is the single source
// of truth; accessors hand out copies.
type Board struct {
	lists []models.List
	now   func() time.Time
}

// NewBoard creates a board seeded with the given lists.
func NewBoard(initial ...models.List) *Board {
	b := &Board{now: time.Now}
	for _, l := range initial {
		b.lists = append(b.lists, cloneList(l))
	}
	return b
}

// Lists returns a snapshot of all lists in display order.
func (b *Board) Lists() []models.List {
	out := make([]models.List, len(b.lists))
	for i, l := range b.lists {
		out[i] = cloneList(l)
	}
	return out
}

// Get returns the list with the given id, or ErrListNotFound.
func (b *Board) Get(id string) (models.List, error) {
	l := b.find(id)
	if l == nil {
		return models.List{}, ErrListNotFound
	}
	return cloneList(*l), nil
}

// Create appends a new empty list. The title must be non-blank and the kind
// must be one of the recognized categories.
func (b *Board) Create(title string, kind models.ListKind) (models.List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.List{}, ErrEmptyTitle
	}
	if !kind.Valid() {
		return models.List{}, ErrUnknownKind
	}
	l := models.List{
		ID:        uuid.New().String(),
		Title:     title,
		Kind:      kind,
		UpdatedAt: b.now(),
	}
	b.lists = append(b.lists, l)
	return cloneList(l), nil
}

// ToggleItem flips the completion flag of one item. A missing list or item
// id is reported as an explicit error rather than a silent no-op.
func (b *Board) ToggleItem(listID, itemID string) (models.List, error) {
	return b.mutateItem(listID, itemID, func(it *models.Item) {
		it.Completed = !it.Completed
	})
}

// CycleAssignment advances an item's assignee through the fixed cycle
// unassigned -> You -> Partner -> unassigned.
func (b *Board) CycleAssignment(listID, itemID string) (models.List, error) {
	return b.mutateItem(listID, itemID, func(it *models.Item) {
		it.AssignedTo = it.AssignedTo.Next()
	})
}

// AddItem appends a new, uncompleted item to the list. When assignToSelf is
// set the item starts assigned to the acting user, otherwise unassigned.
func (b *Board) AddItem(listID, title string, assignToSelf bool) (models.List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.List{}, ErrEmptyTitle
	}
	l := b.find(listID)
	if l == nil {
		return models.List{}, ErrListNotFound
	}
	assignee := models.Unassigned
	if assignToSelf {
		assignee = models.You
	}
	l.Items = append(l.Items, models.Item{
		ID:         uuid.New().String(),
		Title:      title,
		Completed:  false,
		AssignedTo: assignee,
	})
	l.UpdatedAt = b.now()
	return cloneList(*l), nil
}

func (b *Board) mutateItem(listID, itemID string, mutate func(*models.Item)) (models.List, error) {
	l := b.find(listID)
	if l == nil {
		return models.List{}, ErrListNotFound
	}
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			mutate(&l.Items[i])
			l.UpdatedAt = b.now()
			return cloneList(*l), nil
		}
	}
	return models.List{}, ErrItemNotFound
}

func (b *Board) find(id string) *models.List {
	for i := range b.lists {
		if b.lists[i].ID == id {
			return &b.lists[i]
		}
	}
	return nil
}

func cloneList(l models.List) models.List {
	out := l
	out.Items = make([]models.Item, len(l.Items))
	copy(out.Items, l.Items)
	return out
}
