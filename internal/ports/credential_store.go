package ports

import "context"

// CredentialStore holds the single durable bearer credential. Token
// returns domain.ErrRecordNotFound-free semantics: an absent
// credential is reported as an empty string, not an error, so callers
// can branch on logged-in state without error plumbing.
type CredentialStore interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
