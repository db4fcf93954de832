package lists

import (
	"fmt"
	"strings"
	"time"

	"github.com/duetapp/duet/internal/models"
)

// FilterItems returns the items whose title contains the query,
// case-insensitively. An empty query returns all items. The result is a
// snapshot, not a live view of the list.
func FilterItems(l models.List, query string) []models.Item {
	out := make([]models.Item, 0, len(l.Items))
	q := strings.ToLower(query)
	for _, it := range l.Items {
		if q == "" || strings.Contains(strings.ToLower(it.Title), q) {
			out = append(out, it)
		}
	}
	return out
}

// FormatRecency buckets a timestamp into "Today", "Yesterday" or
// "N days ago" by whole calendar days. The difference is absolute, so a
// skewed clock never produces a negative bucket.
func FormatRecency(updatedAt, now time.Time) string {
	days := daysBetween(updatedAt, now)
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// daysBetween returns the absolute whole-day difference between the
// calendar dates of a and b.
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	days := int(db.Sub(da).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}
