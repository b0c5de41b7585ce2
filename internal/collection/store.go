// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collection owns the in-memory painting collection shared by the
// acquisition pipeline (single writer) and the display, timer, and export
// collaborators (readers).
package collection

import (
	"math/rand/v2"
	"sync"

	"github.com/pdiddy/gallery/pkg/types"
)

// Store is an ordered, append-only sequence of paintings. It does not
// re-validate uniqueness; writers run IsDuplicate before appending.
type Store struct {
	mu        sync.RWMutex
	paintings []types.Painting
}

// NewStore returns a store holding seed in order.
func NewStore(seed ...types.Painting) *Store {
	s := &Store{}
	s.paintings = append(s.paintings, seed...)
	return s
}

// Len returns the number of paintings in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.paintings)
}

// Snapshot returns a copy of the collection in insertion order.
func (s *Store) Snapshot() []types.Painting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Painting, len(s.paintings))
	copy(out, s.paintings)
	return out
}

// Append adds batch to the end of the store in one step. Readers observe
// either none or all of the batch.
func (s *Store) Append(batch []types.Painting) {
	if len(batch) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paintings = append(s.paintings, batch...)
}

// Random returns a uniformly chosen painting. The boolean is false when the
// store is empty. A nil r uses the global source.
func (s *Store) Random(r *rand.Rand) (types.Painting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.paintings) == 0 {
		return types.Painting{}, false
	}
	var i int
	if r != nil {
		i = r.IntN(len(s.paintings))
	} else {
		i = rand.IntN(len(s.paintings))
	}
	return s.paintings[i], true
}
