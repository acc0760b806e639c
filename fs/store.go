// Package fs provides file-based output for published records.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wikidaily"
)

// Ensure Store implements wikidaily.Store at compile time.
var _ wikidaily.Store = (*Store)(nil)

// Store writes files under a base directory. Each file is written to a
// temporary sibling and renamed into place, so readers never observe a
// partially written file.
type Store struct {
	baseDir string

	mu    sync.Mutex
	files []wikidaily.OutputFile
	index map[string]int
}

// NewStore creates a new Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{
		baseDir: baseDir,
		index:   make(map[string]int),
	}
}

// Open creates the base directory. A run cannot continue without it.
func (s *Store) Open() error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return fmt.Errorf("creating output directory %q: %w", s.baseDir, err)
	}
	return nil
}

// Dir returns the base directory.
func (s *Store) Dir() string {
	return s.baseDir
}

// Save atomically writes data to name, creating parent directories as needed.
// Saving a name twice replaces the earlier file and its listing entry.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, err := cleanName(name)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.baseDir, rel)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		os.Remove(tmpName)
		return err
	}

	s.record(filepath.ToSlash(rel), data)
	return nil
}

// Files returns the files saved so far, in first-save order.
func (s *Store) Files() []wikidaily.OutputFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	files := make([]wikidaily.OutputFile, len(s.files))
	copy(files, s.files)
	return files
}

func (s *Store) record(name string, data []byte) {
	file := wikidaily.OutputFile{
		Name:     name,
		Size:     len(data),
		Checksum: Checksum(data),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[name]; ok {
		s.files[i] = file
		return
	}
	s.index[name] = len(s.files)
	s.files = append(s.files, file)
}

// Checksum returns the hex xxhash64 of data.
func Checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// cleanName validates a store-relative file name.
func cleanName(name string) (string, error) {
	if name == "" {
		return "", wikidaily.Errorf(wikidaily.EINVALID, "file name required")
	}
	if filepath.IsAbs(name) {
		return "", wikidaily.Errorf(wikidaily.EINVALID, "file name %q must be relative", name)
	}
	rel := filepath.Clean(name)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", wikidaily.Errorf(wikidaily.EINVALID, "file name %q escapes the output directory", name)
	}
	return rel, nil
}
