package cache

import (
	"context"
	"encoding/json"
)

// Entry is a cached payload with an absolute expiry in epoch milliseconds.
type Entry struct {
	ExpiresAtMs int64           `json:"expiresAtMs"`
	Payload     json.RawMessage `json:"payload"`
}

// Fresh reports whether the entry is still valid at nowMs.
func (e Entry) Fresh(nowMs int64) bool {
	return nowMs < e.ExpiresAtMs
}

// Store is a key-value backend for cache entries. Implementations need not be
// transactional; concurrent writers for the same key are last-writer-wins.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Put(ctx context.Context, key string, entry Entry) error
}
