package feed

import (
	"context"
	"fmt"
	"sync"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Department scope values with special meaning. Any other value is a
// concrete department name.
const (
	ScopeAll  = "all"
	ScopeMine = "mine"
)

// API is the slice of the BragBoard client the synchronizer needs.
type API interface {
	Feed(ctx context.Context, department string) ([]api.Shoutout, error)
	Users(ctx context.Context) ([]api.User, error)
	Me(ctx context.Context) (*api.User, error)
	ToggleReaction(ctx context.Context, shoutoutID int, typ api.ReactionType) (api.ReactionCounts, error)
}

// Synchronizer loads and owns the feed for one view instance. Methods are
// safe for concurrent use; loads typically run on background goroutines
// while the UI reads snapshots.
type Synchronizer struct {
	client API
	log    *logging.Logger

	mu         sync.Mutex
	generation uint64
	items      []api.Shoutout
	directory  map[int]api.User
	me         *api.User
	loadErr    error
}

// NewSynchronizer creates a Synchronizer over the given client. A nil
// logger disables logging.
func NewSynchronizer(client API, log *logging.Logger) *Synchronizer {
	if log == nil {
		log = logging.Nop()
	}
	return &Synchronizer{client: client, log: log}
}

// Load fetches the feed for the department scope, along with the user
// directory and current-user identity if this instance has not fetched them
// yet. The feed fetch is required: its failure sets the error state and
// nothing merges. The directory and identity fetches are best-effort; when
// they fail the feed still commits and names degrade to "User #<id>".
//
// Load returns true when its result was committed, false when a newer load
// superseded it first.
func (s *Synchronizer) Load(ctx context.Context, department string) bool {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	needDirectory := s.directory == nil
	needMe := s.me == nil
	s.mu.Unlock()

	var (
		items     []api.Shoutout
		directory []api.User
		me        *api.User
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		items, err = s.client.Feed(groupCtx, department)
		return err
	})
	if needDirectory {
		group.Go(func() error {
			users, err := s.client.Users(groupCtx)
			if err != nil {
				// Degraded join, not a failed load.
				s.log.Warn("directory fetch failed", "error", err.Error())
				return nil
			}
			directory = users
			return nil
		})
	}
	if needMe {
		group.Go(func() error {
			user, err := s.client.Me(groupCtx)
			if err != nil {
				s.log.Warn("identity fetch failed", "error", err.Error())
				return nil
			}
			me = user
			return nil
		})
	}
	err := group.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer load owns the state now; drop this result.
		s.log.Debug("discarding superseded load", "generation", gen, "current", s.generation)
		return false
	}

	if err != nil {
		s.loadErr = fmt.Errorf("failed to load feed: %w", err)
		return true
	}

	s.loadErr = nil
	s.items = items
	if directory != nil {
		s.directory = make(map[int]api.User, len(directory))
		for _, u := range directory {
			s.directory[u.ID] = u
		}
	}
	if me != nil {
		s.me = me
	}
	s.log.Debug("feed committed", "department", department, "items", len(items))
	return true
}

// Items returns a copy of the current feed items.
func (s *Synchronizer) Items() []api.Shoutout {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Shoutout, len(s.items))
	copy(out, s.items)
	return out
}

// Err returns the current load error, or nil.
func (s *Synchronizer) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Me returns the current-user identity if it has been fetched.
func (s *Synchronizer) Me() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.me
}

// Lookup returns the directory entry for a user id.
func (s *Synchronizer) Lookup(id int) (api.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.directory[id]
	return u, ok
}

// DisplayName resolves a user id to a display name, degrading to
// "User #<id>" when the directory has no matching entry.
func (s *Synchronizer) DisplayName(id int) string {
	if u, ok := s.Lookup(id); ok {
		return u.Name
	}
	return fmt.Sprintf("User #%d", id)
}

// Toggle sends a reaction toggle for a shoutout and, on success, replaces
// that item's counts with the server's response. Failures are intentionally
// silent: the item is left untouched and the UI shows nothing. The swallow
// lives here, in one place, so a stricter variant can surface the error
// without touching call sites.
func (s *Synchronizer) Toggle(ctx context.Context, shoutoutID int, typ api.ReactionType) {
	s.bestEffort("reaction toggle", func() error {
		counts, err := s.client.ToggleReaction(ctx, shoutoutID, typ)
		if err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.items {
			if s.items[i].ID == shoutoutID {
				s.items[i].Reactions = counts
				break
			}
		}
		return nil
	})
}

// bestEffort runs a write whose failure the UI deliberately ignores. The
// error still reaches the debug log.
func (s *Synchronizer) bestEffort(op string, fn func() error) {
	if err := fn(); err != nil {
		s.log.Debug("best-effort mutation failed", "op", op, "error", err.Error())
	}
}
