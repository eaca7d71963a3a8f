// Package cart implements the namespace-scoped shopping cart. The in-memory
// entry list always mirrors the persisted list under the active namespace:
// every mutation writes through, and Rebind reloads wholesale.
package cart

import (
	"errors"
	"io"
	"log"
	"sync"

	"github.com/gitsish/aaishop-ibm-project/internal/domain"
	"github.com/gitsish/aaishop-ibm-project/internal/storage"
)

const keyPrefix = "cart."

// Key returns the storage key for a namespace.
func Key(namespace string) string {
	return keyPrefix + namespace
}

// Store is a cart bound to one namespace at a time. Operations over the
// in-memory list never fail; persistence is write-through best effort.
type Store struct {
	store  storage.Store
	logger *log.Logger

	mu        sync.Mutex
	namespace string
	entries   []domain.CartEntry
}

// New returns a cart bound to the guest namespace.
func New(store storage.Store, logger *log.Logger) (*Store, error) {
	if store == nil {
		return nil, errors.New("cart: storage is required")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Store{store: store, logger: logger}
	s.Rebind(domain.GuestNamespace)
	return s, nil
}

// Rebind switches the active namespace and replaces the in-memory list with
// whatever is persisted under it. Prior in-memory state needs no flush: every
// mutation already wrote through.
func (s *Store) Rebind(namespace string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.namespace = namespace
	s.entries = nil
	storage.Load(s.store, Key(namespace), &s.entries)
	s.logger.Printf("cart bound to %q (%d entries)", namespace, len(s.entries))
}

// Namespace reports the active namespace.
func (s *Store) Namespace() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.namespace
}

// Add puts one unit of the product in the cart. A line with the same
// (product, size, color) already present gains quantity instead of a
// duplicate line. The product snapshot is frozen at this point.
func (s *Store) Add(p domain.Product, size, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].SameLine(p.ID, size, color) {
			s.entries[i].Quantity++
			s.persistLocked()
			return
		}
	}
	s.entries = append(s.entries, domain.CartEntry{
		ProductID:     p.ID,
		Snapshot:      p.Snapshot(),
		Quantity:      1,
		SelectedSize:  size,
		SelectedColor: color,
	})
	s.persistLocked()
}

// Remove drops every line for the product.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ProductID != productID {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.persistLocked()
}

// UpdateQuantity sets the quantity for lines matching the product id.
// Zero or negative removes the lines. Unknown ids are a no-op. Lines are
// matched by product id alone, not by the (product, size, color) add key.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for i := range s.entries {
		if s.entries[i].ProductID == productID {
			s.entries[i].Quantity = quantity
			changed = true
		}
	}
	if changed {
		s.persistLocked()
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.persistLocked()
}

// Entries returns a copy of the lines in insertion order.
func (s *Store) Entries() []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// TotalItems sums quantities across lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, e := range s.entries {
		total += e.Quantity
	}
	return total
}

// TotalPriceCents sums price times quantity across lines.
func (s *Store) TotalPriceCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, e := range s.entries {
		total += e.LineTotalCents()
	}
	return total
}

func (s *Store) persistLocked() {
	entries := s.entries
	if entries == nil {
		entries = []domain.CartEntry{}
	}
	storage.Save(s.store, Key(s.namespace), entries)
}
