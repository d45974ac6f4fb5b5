// Package session holds the token revocation registry. Issued tokens
// stay cryptographically valid until expiry; signing out puts the exact
// token string on a blocklist consulted by the auth middleware on every
// protected request.
package session

import (
	"context"
	"sync"
)

// RevocationList is the registry of revoked token strings. It is
// constructor-injected into the auth middleware so tests can isolate it
// and deployments can swap the backing store.
type RevocationList interface {
	// Revoke adds the token to the registry. Idempotent.
	Revoke(ctx context.Context, token string) error
	// IsRevoked reports whether the token has been revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)
	// Clear empties the registry. Testing/operational utility.
	Clear(ctx context.Context) error
	// Size returns the number of revoked tokens, for monitoring.
	Size(ctx context.Context) (int64, error)
}

// MemoryList is the default in-process registry. A process restart
// forgets all revocations: a token revoked before a restart is accepted
// again while unexpired. Entries are never swept; growth is bounded by
// the process lifetime.
type MemoryList struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewMemoryList() *MemoryList {
	return &MemoryList{tokens: make(map[string]struct{})}
}

func (l *MemoryList) Revoke(_ context.Context, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens[token] = struct{}{}
	return nil
}

func (l *MemoryList) IsRevoked(_ context.Context, token string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.tokens[token]
	return ok, nil
}

func (l *MemoryList) Clear(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens = make(map[string]struct{})
	return nil
}

func (l *MemoryList) Size(_ context.Context) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return int64(len(l.tokens)), nil
}

var _ RevocationList = (*MemoryList)(nil)
