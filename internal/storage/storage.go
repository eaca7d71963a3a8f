// Package storage wraps a synchronous key-value store with JSON encoding and
// failure tolerance. Writes are best effort: a full or unwritable backing
// file never fails the mutation that triggered it, and unreadable data is
// treated the same as absent data.
package storage

import "encoding/json"

// Store is the raw key-value contract. Implementations must be safe for
// concurrent use and must never return errors: absence is the only failure
// mode a caller sees.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// Load decodes the value under key into dest. It reports false and leaves
// dest untouched when the key is absent or holds data that does not decode.
func Load(s Store, key string, dest interface{}) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// Save encodes v under key. Values that cannot be encoded are dropped; the
// store types persisted here are all plain data and never hit that path.
func Save(s Store, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.Set(key, raw)
}
