package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileArea is an Area persisted as one JSON document on disk. It is loaded
// once at construction and written through on every mutation. An empty path
// keeps everything in memory, which is what tests use.
type fileArea struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// NewFileArea opens (or creates on first write) the JSON-file-backed area at
// path. An empty path yields a purely in-memory area.
func NewFileArea(path string) (Area, error) {
	a := &fileArea{
		path:     path,
		inMemory: path == "",
		entries:  make(map[string]json.RawMessage),
	}
	if err := a.load(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *fileArea) load() error {
	if a.inMemory {
		return nil
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}

	entries := make(map[string]json.RawMessage)
	if err = json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decode storage file: %w", err)
	}

	a.entries = entries
	return nil
}

// persist writes the whole document. Caller must hold the write lock.
func (a *fileArea) persist() error {
	if a.inMemory {
		return nil
	}

	dir := filepath.Dir(a.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(a.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}

	if err = os.WriteFile(a.path, payload, 0o600); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}

	return nil
}

func (a *fileArea) Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	result := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		if raw, ok := a.entries[key]; ok {
			result[key] = raw
		}
	}
	return result, nil
}

func (a *fileArea) Set(ctx context.Context, pairs map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for key, value := range pairs {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode value for key %q: %w", key, err)
		}
		a.entries[key] = raw
	}

	return a.persist()
}

func (a *fileArea) Remove(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, key := range keys {
		delete(a.entries, key)
	}

	return a.persist()
}
