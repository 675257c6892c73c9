// Package kv provides the blob storage backends the ledger persists into.
//
// The ledger serializes each collection to a standalone blob (JSON lines)
// and hands it to a Store under a well-known key. Backends only move bytes;
// they never interpret them.
package kv

// Store is a minimal keyed blob store.
type Store interface {
	// Load returns the blob stored under key. ok is false when the key has
	// never been saved, which is not an error.
	Load(key string) (data []byte, ok bool, err error)
	// Save writes the blob under key, replacing any previous value.
	Save(key string, data []byte) error
}
