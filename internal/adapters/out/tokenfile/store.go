// Package tokenfile persists the session token in a single file readable only by
// the current user.
package tokenfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

const (
	dirMode  = 0o700
	fileMode = 0o600
)

type Store struct {
	path string
}

var _ ports.TokenStorage = (*Store)(nil)

// NewStore creates a store backed by the file at path. The file is created on the
// first Save.
func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	return &Store{path: path}, nil
}

// DefaultPath is <user config dir>/parceltrack/token.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "parceltrack", "token"), nil
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored token, or "" when none was saved.
func (s *Store) Load(_ context.Context) (string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Save replaces the stored token atomically.
func (s *Store) Save(_ context.Context, token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".token-*")
	if err != nil {
		return fmt.Errorf("create token file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod token file: %w", err)
	}
	if _, err := tmp.WriteString(token); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write token: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close token file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// Clear removes the token. Clearing an empty store is not an error.
func (s *Store) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
