package storage

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a single JSON document on disk, the moral
// equivalent of browser localStorage: the whole table is read once at open
// and rewritten after every mutation. Disk failures are logged and swallowed,
// so a full or read-only disk degrades to in-memory-only operation.
type File struct {
	path   string
	logger *log.Logger

	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// OpenFile loads the store at path, creating parent directories as needed.
// A missing or corrupt file starts the store empty rather than failing.
func OpenFile(path string, logger *log.Logger) *File {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	f := &File{
		path:   path,
		logger: logger,
		data:   make(map[string]json.RawMessage),
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Printf("storage: create dir %s: %v", dir, err)
		}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Printf("storage: read %s: %v", path, err)
		}
		return f
	}
	if err := json.Unmarshal(raw, &f.data); err != nil {
		logger.Printf("storage: %s is not valid JSON, starting empty: %v", path, err)
		f.data = make(map[string]json.RawMessage)
	}
	return f
}

func (f *File) Get(key string) ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	raw, ok := f.data[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true
}

func (f *File) Set(key string, value []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw := make(json.RawMessage, len(value))
	copy(raw, value)
	f.data[key] = raw
	f.flushLocked()
}

func (f *File) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	f.flushLocked()
}

// Ping reports whether the backing file is currently writable. Stores never
// consult it; it only feeds the readiness probe.
func (f *File) Ping() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	return file.Close()
}

// flushLocked rewrites the whole document via a temp file and rename so a
// crash mid-write cannot truncate existing data.
func (f *File) flushLocked() {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		f.logger.Printf("storage: encode %s: %v", f.path, err)
		return
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		f.logger.Printf("storage: write %s: %v", tmp, err)
		return
	}
	if err := os.Rename(tmp, f.path); err != nil {
		f.logger.Printf("storage: rename %s: %v", tmp, err)
	}
}
