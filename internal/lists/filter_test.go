package lists

import (
	"testing"
	"time"

	"github.com/duetapp/duet/internal/models"
)

func TestFilterItems(t *testing.T) {
	l := models.List{
		Items: []models.Item{
			{ID: "i1", Title: "Milk"},
			{ID: "i2", Title: "Almond milk"},
			{ID: "i3", Title: "Bread"},
		},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query returns all", query: "", wantIDs: []string{"i1", "i2", "i3"}},
		{name: "lowercase query matches capitalized title", query: "milk", wantIDs: []string{"i1", "i2"}},
		{name: "uppercase query", query: "MILK", wantIDs: []string{"i1", "i2"}},
		{name: "substring match", query: "rea", wantIDs: []string{"i3"}},
		{name: "no match", query: "cheese", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterItems(l, tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d items, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("item %d = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterItemsIsSnapshot(t *testing.T) {
	l := models.List{Items: []models.Item{{ID: "i1", Title: "Milk"}}}

	got := FilterItems(l, "")
	got[0].Title = "changed"

	if l.Items[0].Title != "Milk" {
		t.Error("filter result must not alias the list's items")
	}
}

func TestFormatRecency(t *testing.T) {
	now := time.Date(2025, 2, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		updatedAt time.Time
		want      string
	}{
		{name: "same day", updatedAt: time.Date(2025, 2, 5, 1, 0, 0, 0, time.UTC), want: "Today"},
		{name: "previous day", updatedAt: time.Date(2025, 2, 4, 23, 59, 0, 0, time.UTC), want: "Yesterday"},
		{name: "four days", updatedAt: time.Date(2025, 2, 1, 9, 15, 0, 0, time.UTC), want: "4 days ago"},
		{name: "skewed clock stays non-negative", updatedAt: time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC), want: "3 days ago"},
		{name: "future same day", updatedAt: time.Date(2025, 2, 5, 23, 0, 0, 0, time.UTC), want: "Today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRecency(tt.updatedAt, now); got != tt.want {
				t.Errorf("FormatRecency = %q, want %q", got, tt.want)
			}
		})
	}
}
