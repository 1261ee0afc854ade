package thread

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/Sruthika-k/Bragboard/internal/api"
)

type fakeAPI struct {
	comments []api.Comment
	users    []api.User

	commentsErr error
	addErr      error
	usersErr    error

	addCalls      atomic.Int64
	commentsCalls atomic.Int64
	usersCalls    atomic.Int64
	reportCalls   atomic.Int64
	lastContent   string
	lastReason    string
}

func (f *fakeAPI) Comments(ctx context.Context, shoutoutID int) ([]api.Comment, error) {
	f.commentsCalls.Add(1)
	if f.commentsErr != nil {
		return nil, f.commentsErr
	}
	return f.comments, nil
}

func (f *fakeAPI) AddComment(ctx context.Context, shoutoutID int, content string) error {
	f.addCalls.Add(1)
	f.lastContent = content
	if f.addErr != nil {
		return f.addErr
	}
	f.comments = append(f.comments, api.Comment{
		ID:         len(f.comments) + 1,
		ShoutoutID: shoutoutID,
		Content:    content,
	})
	return nil
}

func (f *fakeAPI) Users(ctx context.Context) ([]api.User, error) {
	f.usersCalls.Add(1)
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.users, nil
}

func (f *fakeAPI) ReportComment(ctx context.Context, commentID int, reason string) error {
	f.reportCalls.Add(1)
	f.lastReason = reason
	return nil
}

func TestLoadReplacesItems(t *testing.T) {
	fake := &fakeAPI{comments: []api.Comment{
		{ID: 1, ShoutoutID: 5, Content: "nice"},
		{ID: 2, ShoutoutID: 5, Content: "agreed"},
	}}
	th := New(fake, 5, 0, nil)

	th.Load(context.Background())

	if err := th.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := th.Items(); len(got) != 2 {
		t.Errorf("expected 2 comments, got %d", len(got))
	}
}

func TestLoadErrorState(t *testing.T) {
	fake := &fakeAPI{commentsErr: errors.New("down")}
	th := New(fake, 5, 0, nil)

	th.Load(context.Background())

	if th.Err() == nil {
		t.Error("expected a load error")
	}
	if len(th.Items()) != 0 {
		t.Error("no comments should be shown on load failure")
	}
}

func TestPostWhitespaceOnlyMakesNoNetworkCall(t *testing.T) {
	fake := &fakeAPI{}
	th := New(fake, 5, 0, nil)

	for _, content := range []string{"", "   ", "\n\t "} {
		if posted := th.Post(context.Background(), content); posted {
			t.Errorf("Post(%q) should be rejected", content)
		}
	}
	if calls := fake.addCalls.Load(); calls != 0 {
		t.Errorf("whitespace-only posts caused %d network calls, want 0", calls)
	}
}

func TestPostRefetchesInsteadOfOptimisticInsert(t *testing.T) {
	fake := &fakeAPI{}
	th := New(fake, 5, 0, nil)
	th.Load(context.Background())
	refetches := fake.commentsCalls.Load()

	if posted := th.Post(context.Background(), "well done @Alice"); !posted {
		t.Fatal("Post should succeed")
	}

	if fake.lastContent != "well done @Alice" {
		t.Errorf("posted content = %q", fake.lastContent)
	}
	if fake.commentsCalls.Load() != refetches+1 {
		t.Error("Post must re-fetch the full comment list after creation")
	}
	items := th.Items()
	if len(items) != 1 || items[0].ID != 1 {
		t.Errorf("items after post = %v, want the server's version", items)
	}
}

func TestPostFailureKeepsInput(t *testing.T) {
	fake := &fakeAPI{addErr: errors.New("write failed")}
	th := New(fake, 5, 0, nil)

	if posted := th.Post(context.Background(), "hello"); posted {
		t.Error("failed post must report false so the composer keeps its text")
	}
}

func TestReportEmptyReasonAborts(t *testing.T) {
	fake := &fakeAPI{}
	th := New(fake, 5, 0, nil)

	th.Report(context.Background(), 1, "")
	th.Report(context.Background(), 1, "   ")
	if calls := fake.reportCalls.Load(); calls != 0 {
		t.Errorf("empty reasons caused %d report calls, want 0", calls)
	}

	th.Report(context.Background(), 1, "spam")
	if calls := fake.reportCalls.Load(); calls != 1 {
		t.Errorf("report calls = %d, want 1", calls)
	}
	if fake.lastReason != "spam" {
		t.Errorf("reason = %q", fake.lastReason)
	}
}

func TestDirectoryLoadedOnceAndDegrades(t *testing.T) {
	fake := &fakeAPI{usersErr: errors.New("down")}
	th := New(fake, 5, 0, nil)

	th.LoadDirectory(context.Background())
	th.LoadDirectory(context.Background())

	if calls := fake.usersCalls.Load(); calls != 1 {
		t.Errorf("directory fetched %d times, want 1", calls)
	}
	// Suggestions degrade to empty rather than erroring.
	if got := th.Suggestions("hi @al"); len(got) != 0 {
		t.Errorf("expected no suggestions without a directory, got %v", got)
	}
}

func TestSuggestionsEndToEnd(t *testing.T) {
	fake := &fakeAPI{users: []api.User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Albert"},
		{ID: 3, Name: "Bob"},
	}}
	th := New(fake, 5, 0, nil)
	th.LoadDirectory(context.Background())

	got := th.Suggestions("Thanks @al")
	if len(got) != 2 || got[0].Name != "Alice" || got[1].Name != "Albert" {
		t.Errorf("Suggestions = %v, want [Alice Albert]", got)
	}

	if got := th.Suggestions("no mention"); got != nil {
		t.Errorf("expected nil without a trailing mention, got %v", got)
	}
}
