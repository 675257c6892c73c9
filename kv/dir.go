package kv

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir stores each key as a file "<key>.jsonl" inside a directory. It is the
// default backend: plain files diff well and survive any tooling.
type Dir struct {
	path string
}

// NewDir opens a directory store, creating the directory if needed.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("creating store directory %q: %w", path, err)
	}
	return &Dir{path: path}, nil
}

func (d *Dir) file(key string) string { return filepath.Join(d.path, key+".jsonl") }

func (d *Dir) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(d.file(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %q: %w", d.file(key), err)
	}
	return data, true, nil
}

// Save writes atomically via a temp file rename so a crash mid-write never
// truncates an existing collection.
func (d *Dir) Save(key string, data []byte) error {
	tmp, err := os.CreateTemp(d.path, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %q: %w", key, err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("writing %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("closing %q: %w", key, err)
	}
	if err := os.Rename(name, d.file(key)); err != nil {
		os.Remove(name)
		return fmt.Errorf("replacing %q: %w", d.file(key), err)
	}
	return nil
}
