// Package sink provides output destinations for generated files.
package sink

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// OutputSink receives rendered file content.
type OutputSink interface {
	// WriteFile stores content under path, a clean slash-separated path
	// relative to the sink's destination.
	WriteFile(ctx context.Context, path string, content []byte) error
}

// ErrInvalidPath wraps every ValidatePath failure.
var ErrInvalidPath = errors.New("invalid output path")

// FilesystemSink writes files below a directory.
type FilesystemSink struct {
	Root string

	// Mode defaults to 0644.
	Mode os.FileMode

	// MkdirAll creates missing parent directories. When false, writing into a
	// missing directory fails with the underlying fs error.
	MkdirAll bool
}

// NewFilesystemSink returns a sink rooted at root.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0644}
}

// WriteFile replaces Root/path with content in a single write. Filesystem
// errors are returned unwrapped.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(s.Root, filepath.FromSlash(path))
	if err := s.contain(target); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidPath, path, err)
	}

	if s.MkdirAll {
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(target, content, cmp.Or(s.Mode, 0644))
}

// contain checks that target resolves inside Root.
func (s *FilesystemSink) contain(target string) error {
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return errors.New("resolves outside root")
	}
	return nil
}

// MemorySink keeps written files in memory, remembering write order.
// It is not safe for concurrent use.
type MemorySink struct {
	files map[string][]byte
	order []string
}

func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile stores a copy of content.
func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, ok := s.files[path]; !ok {
		s.order = append(s.order, path)
	}
	s.files[path] = append([]byte(nil), content...)
	return nil
}

// Files returns a copy of the stored files keyed by path.
func (s *MemorySink) Files() map[string][]byte {
	result := make(map[string][]byte, len(s.files))
	for p, content := range s.files {
		result[p] = append([]byte(nil), content...)
	}
	return result
}

// Paths returns the written paths in first-write order.
func (s *MemorySink) Paths() []string {
	return append([]string(nil), s.order...)
}

// Get returns a copy of the content stored at path, or nil.
func (s *MemorySink) Get(path string) []byte {
	if content, ok := s.files[path]; ok {
		return append([]byte(nil), content...)
	}
	return nil
}

// Reset forgets every stored file.
func (s *MemorySink) Reset() {
	s.files = make(map[string][]byte)
	s.order = nil
}

// ValidatePath reports whether path is acceptable to a sink: non-empty,
// relative, slash-separated, clean and free of ".." components.
func ValidatePath(path string) error {
	switch {
	case path == "":
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	case filepath.IsAbs(path) || strings.HasPrefix(path, "/") || hasDrive(path):
		return fmt.Errorf("%w: %q is absolute", ErrInvalidPath, path)
	case slices.Contains(strings.Split(path, "/"), ".."):
		return fmt.Errorf("%w: %q contains a traversal", ErrInvalidPath, path)
	}
	if clean := filepath.ToSlash(filepath.Clean(path)); clean != path {
		return fmt.Errorf("%w: %q is not clean, want %q", ErrInvalidPath, path, clean)
	}
	return nil
}

// hasDrive matches Windows drive prefixes such as "C:" on every platform.
func hasDrive(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0] | 0x20
	return c >= 'a' && c <= 'z'
}
