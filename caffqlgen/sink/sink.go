// Package sink provides output destinations for generated code.
package sink

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	pathpkg "path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/renameio/v2"
	"github.com/samber/lo"
)

// OutputSink is where a generator writes its files. Paths are relative and
// slash-separated; the sink decides where they end up. WriteFile may be
// called concurrently.
type OutputSink interface {
	WriteFile(ctx context.Context, path string, content []byte) error
}

const defaultMode os.FileMode = 0644

// FilesystemSink writes files below a root directory on disk.
type FilesystemSink struct {
	Root string

	// Mode applies to created files. Zero means 0644.
	Mode os.FileMode

	// Overwrite replaces existing files. Without it, writing to an existing
	// path fails and leaves the file untouched.
	Overwrite bool
}

// NewFilesystemSink returns a sink rooted at root that replaces existing files.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: defaultMode, Overwrite: true}
}

// WriteFile writes content to path below the root, creating directories on
// the way. The file appears complete or not at all.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory for %q: %w", path, err)
	}

	mode := cmp.Or(s.Mode, defaultMode)
	if !s.Overwrite {
		return createExclusive(ctx, path, target, content, mode)
	}
	if err := renameio.WriteFile(target, content, mode); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// resolve maps path below the root and rejects anything that lands outside.
func (s *FilesystemSink) resolve(path string) (string, error) {
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", fmt.Errorf("resolving root %q: %w", s.Root, err)
	}
	target := filepath.Join(root, filepath.FromSlash(path))
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes root directory: %q", path)
	}
	return target, nil
}

// createExclusive stages content next to target and hard-links it into
// place. os.Link fails when target exists.
func createExclusive(ctx context.Context, path, target string, content []byte, mode os.FileMode) error {
	staged, err := os.CreateTemp(filepath.Dir(target), ".caffql-*.tmp")
	if err != nil {
		return fmt.Errorf("staging %q: %w", path, err)
	}
	defer os.Remove(staged.Name())

	if _, err := staged.Write(content); err != nil {
		staged.Close()
		return fmt.Errorf("staging %q: %w", path, err)
	}
	if err := staged.Close(); err != nil {
		return fmt.Errorf("staging %q: %w", path, err)
	}
	if err := os.Chmod(staged.Name(), mode); err != nil {
		return fmt.Errorf("staging %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Link(staged.Name(), target); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("file already exists: %q", path)
		}
		return fmt.Errorf("creating %q: %w", path, err)
	}
	return nil
}

// MemorySink keeps generated files in memory, keyed by path. It is used to
// stage a generation run so that nothing reaches disk unless the run
// succeeds. It is safe for concurrent use.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile stores a copy of content under path, replacing earlier content.
func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.files[path] = bytes.Clone(content)
	s.mu.Unlock()
	return nil
}

// Files returns copies of every stored file.
func (s *MemorySink) Files() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.MapValues(s.files, func(content []byte, _ string) []byte {
		return bytes.Clone(content)
	})
}

// Get returns a copy of the file at path, or nil when nothing was written there.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bytes.Clone(s.files[path])
}

// ValidatePath reports whether path may be handed to a sink. Paths are
// slash-separated, relative and already clean, and never step outside the
// sink root.
func ValidatePath(path string) error {
	switch {
	case path == "":
		return errors.New("path is empty")
	case filepath.IsAbs(path), strings.HasPrefix(path, "/"), hasDriveLetter(path):
		return errors.New("absolute paths not allowed")
	}
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == ".." {
			return errors.New("path traversal not allowed")
		}
	}
	if cleaned := pathpkg.Clean(filepath.ToSlash(path)); cleaned != path {
		return fmt.Errorf("path is not clean (expected %q, got %q)", cleaned, path)
	}
	return nil
}

// hasDriveLetter matches Windows volume prefixes such as "C:" on every platform.
func hasDriveLetter(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0] | 0x20
	return c >= 'a' && c <= 'z'
}
