// Package progress tracks per-course chapter completion sets. The set is a
// cache, not a source of truth: it lives in an injected key/value store and
// losing it only resets displayed progress.
package progress

import "context"

// Store is the key/value capability the tracker persists into. Implementations
// must treat a missing key as ("", false, nil).
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
