package session

import (
	"context"
	"errors"
)

// ErrNotFound indicates no value is stored under the key.
var ErrNotFound = errors.New("session: key not found")

// Storage is the key-value persistence port for session-scoped state.
// The cart service treats it as best-effort: a failing Get or Set must
// never take the storefront down.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
