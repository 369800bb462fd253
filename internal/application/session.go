package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaloritakip/kta/internal/domain"
	"github.com/kaloritakip/kta/internal/ports"
)

// ErrNotLoggedIn is reported when an operation needs a credential and
// none is stored.
var ErrNotLoggedIn = errors.New("not logged in, run `kta login` first")

// Session guards the single stored bearer credential. It is written
// only by login, logout, and the expired-session path; every outgoing
// request reads it through the credential store.
type Session struct {
	store ports.CredentialStore
}

func NewSession(store ports.CredentialStore) *Session {
	return &Session{store: store}
}

func (s *Session) Token(ctx context.Context) (string, error) {
	return s.store.Token(ctx)
}

func (s *Session) LoggedIn(ctx context.Context) (bool, error) {
	token, err := s.store.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

func (s *Session) SetToken(ctx context.Context, token string) error {
	return s.store.Save(ctx, token)
}

func (s *Session) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Guard inspects an operation error. When the gateway reports the
// expired-session condition the stored credential is cleared, so the
// next invocation starts logged out, and the operator is told to
// re-login. Every other error passes through untouched.
func (s *Session) Guard(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrSessionExpired) {
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			return fmt.Errorf("session expired and clearing credential failed: %w", errors.Join(err, clearErr))
		}
		return fmt.Errorf("session expired, run `kta login` to sign in again: %w", err)
	}

	return err
}
