// Package session persists the single active work session between
// invocations. The session is a small YAML file; no session file means no
// active session. The store hands the session to callers as an explicit
// optional value rather than ambient state.
package session

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"spacetime/internal/domain"
	"spacetime/internal/errors"
)

// Store reads and writes the active-session file
type Store struct {
	path string
}

// NewStore creates a session store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the active session, or nil if there is none.
// A missing or empty session file is not an error.
func (s *Store) Load() (*domain.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewSessionError("read session file", err)
	}

	var sess domain.Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return nil, errors.NewSessionError("parse session file", err)
	}
	if sess.ProjectCode == "" {
		// A cleared session file round-trips as an empty document.
		return nil, nil
	}
	return &sess, nil
}

// Save writes the session as the active one, replacing any previous session
func (s *Store) Save(sess domain.Session) error {
	data, err := yaml.Marshal(sess)
	if err != nil {
		return errors.NewSessionError("encode session", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.NewSessionError("create session directory", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.NewSessionError("write session file", err)
	}
	return nil
}

// Clear removes the active session, if any
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.NewSessionError("clear session file", err)
	}
	return nil
}
