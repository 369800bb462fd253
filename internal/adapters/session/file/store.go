// Package file persists the admin bearer credential as a single
// durable key under the config directory, so a new invocation
// re-enters the logged-in state without re-authenticating.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kaloritakip/kta/internal/ports"
)

const (
	storeDirMode   = 0o700
	credentialMode = 0o600
	credentialFile = "session"
)

type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.CredentialStore = (*Store)(nil)

// NewStore roots the credential file in dir (normally ~/.kta).
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(filepath.Clean(dir), credentialFile)}
}

func (s *Store) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read session credential: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (s *Store) Save(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return errors.New("session credential is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(trimmed+"\n"), credentialMode); err != nil {
		return fmt.Errorf("write session credential: %w", err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session credential: %w", err)
	}

	return nil
}
