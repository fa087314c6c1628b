// Package repo contains the durable storage behind the local trip store.
// Everything is persisted as whole blobs in named slots; the store decides
// what goes in a blob, the repo only reads and replaces it.
// No business logic lives here.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// SlotRepo is a key-value store of named slots, each holding one opaque blob.
// The service layer depends on this interface, not on any one backend, which
// allows the store to be unit-tested against the in-memory implementation.
type SlotRepo interface {
	// Get returns the blob stored under key.
	// Returns domain.ErrNotFound if the slot has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the blob stored under key in one step. Readers see either
	// the old blob or the new one, never a mix.
	Put(ctx context.Context, key string, data []byte) error

	// Delete empties the slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context, key string) error
}

// ErrInvalidKey is returned for slot names that are empty or could escape
// their namespace (path separators, "..").
var ErrInvalidKey = errors.New("invalid slot key")

// checkKey rejects keys no backend should accept.
func checkKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
