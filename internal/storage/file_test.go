package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileRoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	first := OpenFile(path, nil)
	Save(first, "cart.guest", []string{"a", "b"})

	second := OpenFile(path, nil)
	var items []string
	if !Load(second, "cart.guest", &items) {
		t.Fatalf("expected key to survive reopen")
	}
	if len(items) != 2 || items[0] != "a" || items[1] != "b" {
		t.Fatalf("unexpected items after reopen: %v", items)
	}
}

func TestFileMissingKeyLeavesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s := OpenFile(path, nil)

	items := []string{"default"}
	if Load(s, "nope", &items) {
		t.Fatalf("expected load to report absence")
	}
	if len(items) != 1 || items[0] != "default" {
		t.Fatalf("dest should be untouched, got %v", items)
	}
}

func TestFileCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s := OpenFile(path, nil)
	if _, ok := s.Get("anything"); ok {
		t.Fatalf("corrupt file should read as empty")
	}

	// The store must stay usable after the bad read.
	Save(s, "k", 42)
	var n int
	if !Load(s, "k", &n) || n != 42 {
		t.Fatalf("store unusable after corrupt load: %d", n)
	}
}

func TestFileCorruptValueTreatedAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s := OpenFile(path, nil)
	s.Set("k", []byte(`"a string"`))

	var n int
	if Load(s, "k", &n) {
		t.Fatalf("mismatched shape should read as absent")
	}
}

func TestFileDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s := OpenFile(path, nil)
	Save(s, "auth.session", map[string]string{"id": "u1"})
	s.Delete("auth.session")

	reopened := OpenFile(path, nil)
	if _, ok := reopened.Get("auth.session"); ok {
		t.Fatalf("deleted key should not survive reopen")
	}
}

func TestFilePingUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	s := OpenFile(filepath.Join(dir, "store.json"), nil)
	if err := s.Ping(); err != nil {
		t.Fatalf("writable path should ping clean: %v", err)
	}

	bad := OpenFile(filepath.Join(dir, "missing", "nested", "store.json"), nil)
	// Make the parent unreachable by pointing at a file as a directory.
	if err := os.RemoveAll(filepath.Join(dir, "missing")); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "missing"), []byte("x"), 0o644); err != nil {
		t.Fatalf("plant file: %v", err)
	}
	if err := bad.Ping(); err == nil {
		t.Fatalf("expected ping to fail for unreachable path")
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	m := NewMemory()
	Save(m, "k", []int{1, 2})

	raw, ok := m.Get("k")
	if !ok {
		t.Fatalf("expected key")
	}
	raw[0] = 'X'

	var out []int
	if !Load(m, "k", &out) || len(out) != 2 {
		t.Fatalf("stored value should be immune to caller mutation: %v", out)
	}
}
