// Package session defines the persisted session-token contract. The
// token is an opaque bearer credential: present means authenticated,
// absent means not. Injecting the store keeps the token lifecycle
// testable without a real storage backend.
package session

import "context"

// Store holds at most one token. Token returns "" when none is stored.
type Store interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
