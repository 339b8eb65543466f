package storage

import (
	"context"
	"encoding/json"

	"github.com/apolyakov/storefront/internal/logging"
)

// Slot is a single named durable slot holding one JSON-encoded value.
//
// All operations fail soft: storage or decoding problems are logged and the
// caller's in-memory state stays authoritative. A container that cannot
// persist keeps working without persistence for that write.
type Slot struct {
	repo Repository
	key  string
	log  logging.Logger
}

func NewSlot(repo Repository, key string, log logging.Logger) *Slot {
	return &Slot{repo: repo, key: key, log: log.With("slot", key)}
}

// Key returns the slot's storage key.
func (s *Slot) Key() string { return s.key }

// Load decodes the stored value into v. It returns false and leaves v at
// its caller-supplied default when the slot is absent, unreadable, or does
// not parse.
func (s *Slot) Load(ctx context.Context, v any) bool {
	data, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.log.Warn(ctx, "failed to read slot", "error", err)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn(ctx, "discarding corrupt slot value", "error", err)
		return false
	}
	return true
}

// Save writes v as JSON. Failures are logged, never returned.
func (s *Slot) Save(ctx context.Context, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error(ctx, "failed to encode slot value", "error", err)
		return
	}
	if err := s.repo.Set(ctx, s.key, data); err != nil {
		s.log.Error(ctx, "failed to write slot", "error", err)
	}
}

// Clear deletes the slot. Failures are logged, never returned.
func (s *Slot) Clear(ctx context.Context) {
	if err := s.repo.Delete(ctx, s.key); err != nil {
		s.log.Error(ctx, "failed to clear slot", "error", err)
	}
}
