package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	recentFile  = "recent_searches.json"
	sessionFile = "session.json"
	deviceFile  = "device.json"
)

var ErrNoPassphrase = errors.New("store: passphrase required to persist the session")

// Session is what survives a restart.
type Session struct {
	Username string
	Token    string
	SavedAt  time.Time
}

type sessionFileV1 struct {
	Username string    `json:"username"`
	SavedAt  time.Time `json:"savedAt"`
	Token    sealed    `json:"token"`
}

type deviceInfo struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// FileStore keeps on-device state in dir.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string { return filepath.Join(s.dir, name) }

// ---------- Recent searches ----------

func (s *FileStore) LoadRecent(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var terms []string
	if _, err := readJSON(s.path(recentFile), &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func (s *FileStore) SaveRecent(ctx context.Context, terms []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.path(recentFile), terms, 0o600)
}

func (s *FileStore) ClearRecent(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(s.path(recentFile))
}

// ---------- Session ----------

func (s *FileStore) SaveSession(passphrase string, sess Session) error {
	if passphrase == "" {
		return ErrNoPassphrase
	}
	ct, err := seal(passphrase, []byte(sess.Token))
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}
	if sess.SavedAt.IsZero() {
		sess.SavedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.path(sessionFile), sessionFileV1{
		Username: sess.Username,
		SavedAt:  sess.SavedAt,
		Token:    ct,
	}, 0o600)
}

// LoadSession returns ok=false when no session was saved.
func (s *FileStore) LoadSession(passphrase string) (Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f sessionFileV1
	found, err := readJSON(s.path(sessionFile), &f)
	if err != nil || !found {
		return Session{}, false, err
	}
	if passphrase == "" {
		return Session{}, false, ErrNoPassphrase
	}
	token, err := open(passphrase, f.Token)
	if err != nil {
		return Session{}, false, err
	}
	return Session{Username: f.Username, Token: string(token), SavedAt: f.SavedAt}, true, nil
}

func (s *FileStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(s.path(sessionFile))
}

// ---------- Device ----------

// DeviceID returns the install id, creating it on first use.
func (s *FileStore) DeviceID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var info deviceInfo
	found, err := readJSON(s.path(deviceFile), &info)
	var syntaxErr *json.SyntaxError
	if err != nil && !errors.As(err, &syntaxErr) {
		return "", err
	}
	if found && err == nil && info.ID != "" {
		return info.ID, nil
	}

	info = deviceInfo{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
	if err := writeJSON(s.path(deviceFile), info, 0o600); err != nil {
		return "", err
	}
	return info.ID, nil
}
