// Package session persists the client's authentication state across runs.
// The session file is the terminal equivalent of the browser's persistent
// key/value storage: it survives restarts and is cleared explicitly on
// logout.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound indicates no session is stored.
var ErrNotFound = errors.New("no stored session")

// State is the persisted session payload.
type State struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Store reads and writes the session file. It implements api.TokenSource,
// so a Store can be handed straight to the API client. Safe for concurrent
// use.
type Store struct {
	path string

	mu    sync.RWMutex
	state State
}

// NewStore creates a Store backed by {stateDir}/session.json and loads any
// existing session. A missing file is not an error; the store simply starts
// empty.
func NewStore(stateDir string) (*Store, error) {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	s := &Store{path: filepath.Join(stateDir, "session.json")}
	if err := s.load(); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse session file: %w", err)
	}
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	return nil
}

// Save persists a new token, replacing any previous session.
func (s *Store) Save(token, tokenType string) error {
	if tokenType == "" {
		tokenType = "bearer"
	}
	state := State{AccessToken: token, TokenType: tokenType}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := atomicWriteFile(s.path, data, 0600); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	return nil
}

// Clear removes the stored session. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Token returns the current access token and token type. Empty strings mean
// no session. Implements the API client's TokenSource.
func (s *Store) Token() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AccessToken, s.state.TokenType
}

// Authenticated reports whether a token is currently stored. It says nothing
// about whether the server still accepts the token.
func (s *Store) Authenticated() bool {
	token, _ := s.Token()
	return token != ""
}

// atomicWriteFile writes data to path via a temp file and rename, so a
// crash never leaves a truncated session file behind.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
