package pattern

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists the library as a single JSON file mapping names to
// [row, col] offset lists. Writes go to a temp file in the same directory
// and are renamed into place, so a failed write never corrupts the file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads every persisted pattern. A missing file is an empty library.
func (s *FileStore) Load() (map[string]Pattern, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]Pattern{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	patterns := map[string]Pattern{}
	if err := json.Unmarshal(data, &patterns); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return patterns, nil
}

// Append rewrites the file with the existing patterns plus the new one.
func (s *FileStore) Append(name string, p Pattern) error {
	patterns, err := s.Load()
	if err != nil {
		return err
	}
	if _, exists := patterns[name]; exists {
		return fmt.Errorf("pattern %q already stored in %s", name, s.path)
	}
	patterns[name] = p
	data, err := json.MarshalIndent(patterns, "", "  ")
	if err != nil {
		return fmt.Errorf("encode patterns: %w", err)
	}
	data = append(data, '\n')
	return s.writeAtomic(data)
}

func (s *FileStore) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
