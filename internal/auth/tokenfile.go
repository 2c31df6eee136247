package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/heartmarshall/contactbook/internal/domain"
)

// TokenFile persists a session between CLI invocations.
type TokenFile struct {
	path string
}

// NewTokenFile returns a TokenFile at path. An empty path disables
// persistence: Save and Remove do nothing and Restore reports no session.
func NewTokenFile(path string) *TokenFile {
	return &TokenFile{path: path}
}

type storedSession struct {
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

// Path returns the file location.
func (f *TokenFile) Path() string { return f.path }

// Save writes the session's credential with owner-only permissions.
func (f *TokenFile) Save(token string, user domain.User) error {
	if f.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	data, err := json.Marshal(storedSession{AccessToken: token, User: user})
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Restore loads a saved credential into s. It returns false when no file
// exists.
func (f *TokenFile) Restore(s *Session) (bool, error) {
	if f.path == "" {
		return false, nil
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read token file: %w", err)
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return false, fmt.Errorf("decode token file: %w", err)
	}
	if stored.AccessToken == "" {
		return false, nil
	}
	if err := s.Replace(stored.AccessToken, stored.User); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the file. A missing file is not an error.
func (f *TokenFile) Remove() error {
	if f.path == "" {
		return nil
	}
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
