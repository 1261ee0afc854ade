package feed

import (
	"context"
	"testing"
	"time"

	"github.com/Sruthika-k/Bragboard/internal/api"
)

func ts(t *testing.T, value string) api.Timestamp {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return api.Timestamp{Time: parsed}
}

func TestFilterByDate(t *testing.T) {
	items := []api.Shoutout{
		{ID: 1, SenderID: 10, CreatedAt: ts(t, "2025-03-01T09:00:00Z")},
		{ID: 2, SenderID: 20, CreatedAt: ts(t, "2025-03-02T09:00:00Z")},
		{ID: 3, SenderID: 10, CreatedAt: ts(t, "2025-03-02T23:59:00Z")},
	}

	f := Filter{Date: "2025-03-02"}
	got := make([]int, 0)
	for _, item := range items {
		if f.matchesIn(item, time.UTC) {
			got = append(got, item.ID)
		}
	}

	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("date filter selected %v, want [2 3]", got)
	}
}

func TestFilterBySender(t *testing.T) {
	items := []api.Shoutout{
		{ID: 1, SenderID: 10},
		{ID: 2, SenderID: 20},
		{ID: 3, SenderID: 10},
	}

	got := Apply(items, Filter{SenderID: 10})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("sender filter selected %v", got)
	}
}

func TestFilterCombined(t *testing.T) {
	items := []api.Shoutout{
		{ID: 1, SenderID: 10, CreatedAt: ts(t, "2025-03-01T09:00:00Z")},
		{ID: 2, SenderID: 10, CreatedAt: ts(t, "2025-03-02T09:00:00Z")},
		{ID: 3, SenderID: 20, CreatedAt: ts(t, "2025-03-02T09:00:00Z")},
	}

	f := Filter{SenderID: 10, Date: "2025-03-02"}
	var got []int
	for _, item := range items {
		if f.matchesIn(item, time.UTC) {
			got = append(got, item.ID)
		}
	}
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("combined filter selected %v, want [2]", got)
	}
}

func TestFilterMissingTimestampNeverMatchesDate(t *testing.T) {
	f := Filter{Date: "2025-03-02"}
	if f.Matches(api.Shoutout{ID: 1}) {
		t.Error("an item without created_at must not match a date filter")
	}
}

func TestEmptyFilterPassesThrough(t *testing.T) {
	items := []api.Shoutout{{ID: 1}, {ID: 2}}
	got := Apply(items, Filter{})
	if len(got) != 2 {
		t.Errorf("empty filter should pass everything, got %d items", len(got))
	}
}

func TestFilterTriggersNoNetwork(t *testing.T) {
	fake := makeFake()
	sync := NewSynchronizer(fake, nil)
	sync.Load(context.Background(), ScopeAll)
	before := fake.feedCalls.Load()

	// Changing the filter is a pure narrowing of the fetched set.
	Apply(sync.Items(), Filter{SenderID: 10})
	Apply(sync.Items(), Filter{Date: "2025-03-01"})
	Apply(sync.Items(), Filter{})

	if after := fake.feedCalls.Load(); after != before {
		t.Errorf("filter change caused %d extra feed fetches", after-before)
	}
}
