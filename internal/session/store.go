package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Store persists the raw credential at a single fixed path — the only durable
// client-side state. Cleared on logout or detected expiry.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("session: create credential dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("session: write credential: %w", err)
	}
	return nil
}

// Load returns the persisted credential, or empty when none is stored.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: read credential: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: clear credential: %w", err)
	}
	return nil
}

// Manager pairs the persisted credential with its decoded session and is the
// explicit object injected into every data-fetching collaborator.
type Manager struct {
	mu    sync.Mutex
	store *Store
	cur   Session
}

// NewManager loads any persisted credential. A stored token that no longer
// decodes or has expired is purged immediately rather than carried invalid.
func NewManager(store *Store) (*Manager, error) {
	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	m := &Manager{store: store}
	if token != "" {
		m.cur = New(token)
		if !m.cur.Valid() {
			log.Info().Msg("stored credential expired, logging out")
			m.cur = Session{}
			_ = store.Clear()
		}
	}
	return m, nil
}

// Set installs a new credential (persisting it) or, given the empty string,
// logs out and clears the store.
func (m *Manager) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token == "" {
		m.cur = Session{}
		return m.store.Clear()
	}
	m.cur = New(token)
	if !m.cur.Valid() {
		m.cur = Session{}
		_ = m.store.Clear()
		return fmt.Errorf("session: credential is malformed or already expired")
	}
	return m.store.Save(token)
}

// Current returns the session for the caller to re-validate at the point of
// use.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur
}

// Invalidate purges the credential after the server rejected it or expiry was
// detected. Safe to call repeatedly.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cur.Token() != "" {
		log.Warn().Msg("session invalidated, please log in again")
	}
	m.cur = Session{}
	_ = m.store.Clear()
}
