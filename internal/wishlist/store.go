// Package wishlist implements the per-identity saved-products list. Unlike
// the cart there is no guest namespace: while nobody is signed in the store
// is unbound and mutations are warned no-ops, never errors.
package wishlist

import (
	"errors"
	"io"
	"log"
	"sync"

	"github.com/gitsish/aaishop-ibm-project/internal/domain"
	"github.com/gitsish/aaishop-ibm-project/internal/storage"
)

const keyPrefix = "wishlist."

// Key returns the storage key for a namespace.
func Key(namespace string) string {
	return keyPrefix + namespace
}

// Store is a wishlist bound to one identity's namespace, or unbound.
type Store struct {
	store  storage.Store
	logger *log.Logger

	mu        sync.Mutex
	namespace string
	entries   []domain.WishlistEntry
}

// New returns an unbound wishlist.
func New(store storage.Store, logger *log.Logger) (*Store, error) {
	if store == nil {
		return nil, errors.New("wishlist: storage is required")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{store: store, logger: logger}, nil
}

// Rebind switches to an identity's namespace and reloads from persistence.
// An empty namespace unbinds the store and clears the in-memory list, so a
// signed-out visitor never sees the previous account's saved products.
func (s *Store) Rebind(namespace string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.namespace = namespace
	s.entries = nil
	if namespace == "" {
		s.logger.Printf("wishlist unbound")
		return
	}
	storage.Load(s.store, Key(namespace), &s.entries)
	s.logger.Printf("wishlist bound to %q (%d entries)", namespace, len(s.entries))
}

// Bound reports whether an identity namespace is active.
func (s *Store) Bound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.namespace != ""
}

// Toggle removes the product when present and adds it when absent. Called
// while unbound it logs a warning and does nothing.
func (s *Store) Toggle(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.namespace == "" {
		s.logger.Printf("wishlist toggle for product %s ignored: not signed in", p.ID)
		return
	}
	for i, e := range s.entries {
		if e.ProductID == p.ID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persistLocked()
			return
		}
	}
	s.entries = append(s.entries, domain.WishlistEntry{ProductID: p.ID, Snapshot: p.Snapshot()})
	s.persistLocked()
}

// Has reports whether the product is saved.
func (s *Store) Has(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

// Remove drops the product if present. No-op while unbound.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.namespace == "" {
		return
	}
	for i, e := range s.entries {
		if e.ProductID == productID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// Clear empties the list. No-op while unbound.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.namespace == "" {
		return
	}
	s.entries = nil
	s.persistLocked()
}

// Entries returns a copy of the saved products in insertion order.
func (s *Store) Entries() []domain.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WishlistEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// TotalItems counts saved products.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) persistLocked() {
	entries := s.entries
	if entries == nil {
		entries = []domain.WishlistEntry{}
	}
	storage.Save(s.store, Key(s.namespace), entries)
}
