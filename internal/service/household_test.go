package service

import (
	"errors"
	"testing"

	"github.com/duetapp/duet/internal/lists"
	"github.com/duetapp/duet/internal/models"
)

func TestSeededSession(t *testing.T) {
	h := NewHousehold(nil)

	all := h.Lists()
	if len(all) != 3 {
		t.Fatalf("seeded session has %d lists, want 3", len(all))
	}

	// The grocery list starts with 3 of 8 done.
	grocery := all[0]
	if grocery.ItemCount() != 8 || grocery.CompletedCount() != 3 {
		t.Errorf("grocery list = %d/%d, want 3/8 completed", grocery.CompletedCount(), grocery.ItemCount())
	}

	expenses := h.Expenses()
	if len(expenses) != 5 {
		t.Fatalf("seeded ledger has %d expenses, want 5", len(expenses))
	}

	s := h.Settlement()
	if s.Total != 28319 {
		t.Errorf("seeded Total = %d cents, want 28319", s.Total)
	}
	if s.PaidByYou+s.PaidByPartner != s.Total {
		t.Errorf("PaidByYou (%d) + PaidByPartner (%d) != Total (%d)", s.PaidByYou, s.PaidByPartner, s.Total)
	}
}

func TestListScreenFlow(t *testing.T) {
	h := NewHousehold(nil)
	listID := h.Lists()[1].ID // Weekend Tasks: 1 of 4 done

	d, err := h.ListDetail(listID, "")
	if err != nil {
		t.Fatalf("ListDetail failed: %v", err)
	}
	if d.Stats.Total != 4 || d.Stats.Completed != 1 {
		t.Fatalf("initial stats = %+v, want 1 of 4 completed", d.Stats)
	}
	if d.Recency != "Yesterday" {
		t.Errorf("Recency = %q, want Yesterday", d.Recency)
	}

	// Check off an open item; the stats row must follow immediately.
	var openItem string
	for _, it := range d.Items {
		if !it.Completed {
			openItem = it.ID
			break
		}
	}
	d, err = h.ToggleItem(listID, openItem)
	if err != nil {
		t.Fatalf("ToggleItem failed: %v", err)
	}
	if d.Stats.Completed != 2 {
		t.Errorf("Completed after toggle = %d, want 2", d.Stats.Completed)
	}
	if d.Recency != "Today" {
		t.Errorf("Recency after mutation = %q, want Today", d.Recency)
	}

	// Add an item assigned to the acting user.
	before := d.Stats.Yours
	d, err = h.AddItem(listID, "Water plants", true)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if d.Stats.Total != 5 {
		t.Errorf("Total after add = %d, want 5", d.Stats.Total)
	}
	if d.Stats.Yours != before+1 {
		t.Errorf("Yours after add = %d, want %d", d.Stats.Yours, before+1)
	}

	// Filtering is applied to the detail view.
	d, err = h.ListDetail(listID, "water")
	if err != nil {
		t.Fatalf("ListDetail with query failed: %v", err)
	}
	if len(d.Items) != 1 || d.Items[0].Title != "Water plants" {
		t.Errorf("filtered items = %+v, want only Water plants", d.Items)
	}
	// Stats always describe the whole list, not the filtered view.
	if d.Stats.Total != 5 {
		t.Errorf("filtered view Total = %d, want 5", d.Stats.Total)
	}

	if _, err := h.ListDetail("nope", ""); !errors.Is(err, lists.ErrListNotFound) {
		t.Errorf("ListDetail unknown id error = %v, want ErrListNotFound", err)
	}
}

func TestExpenseScreenFlow(t *testing.T) {
	h := NewHousehold(nil)
	before := h.Settlement()

	e, err := h.AddExpense("Takeout", "30.00", models.CategoryFood, models.PaidByPartner)
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	got := h.Expenses()
	if got[0].ID != e.ID {
		t.Errorf("newest expense first: got %q, want %q", got[0].ID, e.ID)
	}

	after := h.Settlement()
	if after.Total != before.Total+3000 {
		t.Errorf("Total = %d, want %d", after.Total, before.Total+3000)
	}
	if after.PaidByPartner != before.PaidByPartner+3000 {
		t.Errorf("PaidByPartner = %d, want %d", after.PaidByPartner, before.PaidByPartner+3000)
	}

	if _, err := h.AddExpense("Takeout", "abc", models.CategoryFood, models.PaidByYou); err == nil {
		t.Error("expected invalid amount to be rejected")
	}
	if len(h.Expenses()) != len(got) {
		t.Error("rejected expense must leave the ledger unchanged")
	}
}

func TestConnectScreenFlow(t *testing.T) {
	h := NewHousehold(nil)

	yours, partners := h.Moods()
	if yours != "" {
		t.Errorf("initial mood = %q, want unset", yours)
	}
	if partners != models.MoodGood {
		t.Errorf("partner mood = %q, want good", partners)
	}

	if err := h.SetMood(models.MoodAmazing); err != nil {
		t.Fatalf("SetMood failed: %v", err)
	}
	yours, _ = h.Moods()
	if yours != models.MoodAmazing {
		t.Errorf("mood = %q, want amazing", yours)
	}

	if err := h.SendSignal(models.SignalLove); err != nil {
		t.Errorf("SendSignal failed: %v", err)
	}
	if err := h.SendMessage(""); err == nil {
		t.Error("expected empty message to be rejected")
	}
}

func TestManagerSessions(t *testing.T) {
	m := NewManager(nil)

	a := m.Session("u1")
	if got := m.Session("u1"); got != a {
		t.Error("same member must get the same session back")
	}

	b := m.Session("u2")
	if b == a {
		t.Fatal("different members must get distinct sessions")
	}

	// Sessions own their collections exclusively.
	if _, err := a.AddExpense("Takeout", "30.00", models.CategoryFood, models.PaidByYou); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if len(a.Expenses()) == len(b.Expenses()) {
		t.Error("mutating one session must not touch another")
	}
}
