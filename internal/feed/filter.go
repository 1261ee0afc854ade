package feed

import (
	"time"

	"github.com/Sruthika-k/Bragboard/internal/api"
)

// DateLayout is the calendar-day format used by the date filter.
const DateLayout = "2006-01-02"

// Filter narrows the already-fetched feed in memory. It is a display-time
// predicate layered on top of the server-side department scope: changing it
// never triggers a network call.
type Filter struct {
	// SenderID restricts to one sender. Zero means any sender.
	SenderID int
	// Date restricts to one local calendar day in DateLayout form.
	// Empty means any day.
	Date string
}

// Empty reports whether the filter passes everything through.
func (f Filter) Empty() bool {
	return f.SenderID == 0 && f.Date == ""
}

// Matches reports whether one shoutout passes the filter. The date check
// compares local calendar days, so a post at 23:30 UTC-5 belongs to the
// local day its author saw.
func (f Filter) Matches(item api.Shoutout) bool {
	return f.matchesIn(item, time.Local)
}

func (f Filter) matchesIn(item api.Shoutout, loc *time.Location) bool {
	if f.SenderID != 0 && item.SenderID != f.SenderID {
		return false
	}
	if f.Date != "" {
		if item.CreatedAt.IsZero() {
			return false
		}
		if item.CreatedAt.In(loc).Format(DateLayout) != f.Date {
			return false
		}
	}
	return true
}

// Apply returns the items passing the filter, preserving order. The input
// is never mutated.
func Apply(items []api.Shoutout, f Filter) []api.Shoutout {
	if f.Empty() {
		return items
	}
	out := make([]api.Shoutout, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}
