// Package storage provides the durable store for client state: a named-slot
// key-value repository backed by a local sqlite database, and a soft-failure
// JSON layer (Slot) on top of it.
package storage

import "context"

// Repository is a named-slot key-value store. Get returns (nil, nil) when
// the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
