// Package thread loads and posts the comments of a single shoutout, and
// assists authoring with @mention suggestions against the user directory.
package thread

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/logging"
)

// DefaultMentionLimit caps suggestion lists when no limit is configured.
const DefaultMentionLimit = 8

// API is the slice of the BragBoard client the thread needs.
type API interface {
	Comments(ctx context.Context, shoutoutID int) ([]api.Comment, error)
	AddComment(ctx context.Context, shoutoutID int, content string) error
	Users(ctx context.Context) ([]api.User, error)
	ReportComment(ctx context.Context, commentID int, reason string) error
}

// Thread owns the comment list for one shoutout. Safe for concurrent use.
type Thread struct {
	client       API
	log          *logging.Logger
	shoutoutID   int
	mentionLimit int

	mu              sync.Mutex
	items           []api.Comment
	loadErr         error
	directory       []api.User
	directoryLoaded bool
}

// New creates a Thread scoped to one shoutout. mentionLimit <= 0 falls back
// to DefaultMentionLimit. A nil logger disables logging.
func New(client API, shoutoutID, mentionLimit int, log *logging.Logger) *Thread {
	if mentionLimit <= 0 {
		mentionLimit = DefaultMentionLimit
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Thread{
		client:       client,
		log:          log,
		shoutoutID:   shoutoutID,
		mentionLimit: mentionLimit,
	}
}

// ShoutoutID returns the shoutout this thread belongs to.
func (t *Thread) ShoutoutID() int {
	return t.shoutoutID
}

// Load replaces the comment list with the server's current state.
func (t *Thread) Load(ctx context.Context) {
	items, err := t.client.Comments(ctx, t.shoutoutID)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.loadErr = fmt.Errorf("failed to load comments: %w", err)
		return
	}
	t.loadErr = nil
	t.items = items
}

// LoadDirectory fetches the user directory once per thread instance. It is
// best-effort: on failure the suggestion feature degrades to an empty list
// and no retry happens for this instance.
func (t *Thread) LoadDirectory(ctx context.Context) {
	t.mu.Lock()
	if t.directoryLoaded {
		t.mu.Unlock()
		return
	}
	t.directoryLoaded = true
	t.mu.Unlock()

	users, err := t.client.Users(ctx)
	if err != nil {
		t.log.Warn("directory fetch for mentions failed", "error", err.Error())
		return
	}
	t.mu.Lock()
	t.directory = users
	t.mu.Unlock()
}

// Post submits a comment. Whitespace-only content is rejected locally with
// no network call. On success the full list is re-fetched so the
// server-assigned id, timestamp, and ordering are authoritative; there is
// no optimistic insert. The return value tells the caller whether the input
// should be cleared: false means the text stays as typed.
func (t *Thread) Post(ctx context.Context, content string) bool {
	if strings.TrimSpace(content) == "" {
		return false
	}
	if err := t.client.AddComment(ctx, t.shoutoutID, content); err != nil {
		// Swallowed by design; the composer keeps its text.
		t.log.Debug("best-effort mutation failed", "op", "add comment", "error", err.Error())
		return false
	}
	t.Load(ctx)
	return true
}

// Report files a report against a comment. An empty or whitespace-only
// reason aborts with no request; otherwise the report is fire-and-forget.
func (t *Thread) Report(ctx context.Context, commentID int, reason string) {
	if strings.TrimSpace(reason) == "" {
		return
	}
	if err := t.client.ReportComment(ctx, commentID, reason); err != nil {
		t.log.Debug("best-effort mutation failed", "op", "report comment", "error", err.Error())
	}
}

// Items returns a copy of the current comments.
func (t *Thread) Items() []api.Comment {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]api.Comment, len(t.items))
	copy(out, t.items)
	return out
}

// Err returns the current load error, or nil.
func (t *Thread) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadErr
}

// Suggestions returns the mention suggestions for the current input text,
// or nil when the input does not end in a mention token or nothing in the
// directory matches.
func (t *Thread) Suggestions(text string) []api.User {
	query, ok := MatchQuery(text)
	if !ok {
		return nil
	}
	t.mu.Lock()
	directory := t.directory
	t.mu.Unlock()
	return Suggest(directory, query, t.mentionLimit)
}
