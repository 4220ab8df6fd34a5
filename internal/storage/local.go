package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/johanforsgren/tokendash/internal/domain"
	"github.com/johanforsgren/tokendash/internal/logger"
)

const sessionFile = "session.json"

// FileStore keeps session values in a JSON file. Point it at a directory
// that is cleared when the user's login session ends (XDG_RUNTIME_DIR) to
// get per-session lifetime.
type FileStore struct {
	path   string
	values map[string]string
	mu     sync.RWMutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("session directory must not be empty")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	store := &FileStore{
		path:   filepath.Join(dir, sessionFile),
		values: map[string]string{},
	}

	if err := store.load(); err != nil {
		if !os.IsNotExist(err) {
			// A damaged session file only costs the user one login.
			logger.LogError("LOAD_SESSION", store.path, err)
			store.values = map[string]string{}
		}
	}

	return store, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.LogFileOpen(s.path)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var parsed sessionData
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse session file: %w", err)
	}
	if parsed.Values != nil {
		s.values = parsed.Values
	}

	logger.Log("Session loaded from %s (%d keys)", s.path, len(s.values))
	return nil
}

// save must be called with s.mu held.
func (s *FileStore) save() error {
	if len(s.values) == 0 {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			logger.LogError("CLEAR_SESSION", s.path, err)
			return fmt.Errorf("failed to remove session file: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(sessionData{Values: s.values})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	tmp := s.path + ".tmp"
	logger.LogFileWrite(s.path)
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		logger.LogError("SAVE_SESSION", tmp, err)
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		logger.LogError("SAVE_SESSION", s.path, err)
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.save()
}

func (s *FileStore) Path() string {
	return s.path
}

var _ domain.SessionStore = (*FileStore)(nil)
