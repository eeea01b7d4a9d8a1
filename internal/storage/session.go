package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// IdleTimeout locks the dashboard after this much inactivity.
const IdleTimeout = 40 * time.Minute

// SessionStore keeps the device-local auth flag and last-activity
// stamp in a side file next to the database. It is never synced: the
// session is a UI gate, not a cryptographic credential.
type SessionStore struct {
	path string
	now  func() time.Time
}

type sessionFile struct {
	SessionID    string    `json:"session_id"`
	LastActivity time.Time `json:"last_activity"`
}

func NewSessionStore(dbPath string, now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{path: dbPath + ".session", now: now}
}

// Create starts a fresh session and stamps activity.
func (s *SessionStore) Create() (string, error) {
	f := sessionFile{SessionID: uuid.NewString(), LastActivity: s.now()}
	if err := s.write(f); err != nil {
		return "", err
	}
	return f.SessionID, nil
}

// Valid reports whether a session exists and has not idled out.
func (s *SessionStore) Valid() bool {
	f, err := s.read()
	if err != nil || f.SessionID == "" {
		return false
	}
	return s.now().Sub(f.LastActivity) < IdleTimeout
}

// Touch refreshes the last-activity stamp of a live session.
func (s *SessionStore) Touch() error {
	f, err := s.read()
	if err != nil || f.SessionID == "" {
		return fmt.Errorf("no active session")
	}
	f.LastActivity = s.now()
	return s.write(f)
}

// Clear ends the session.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SessionStore) read() (sessionFile, error) {
	var f sessionFile
	data, err := os.ReadFile(s.path)
	if err != nil {
		return f, err
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return sessionFile{}, fmt.Errorf("read session: %w", err)
	}
	return f, nil
}

func (s *SessionStore) write(f sessionFile) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
