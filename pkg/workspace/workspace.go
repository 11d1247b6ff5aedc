package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

var (
	ErrRead         = errors.New("workspace: cannot read source")
	ErrWrite        = errors.New("workspace: cannot write output")
	ErrPathEscape   = errors.New("workspace: path escape violation")
	ErrFileTooLarge = errors.New("workspace: file size limit exceeded")
)

// Workspace confines source reads and output writes to a root directory.
type Workspace struct {
	Root        string
	MaxFileSize int
}

func New(root string, maxFileSize int) (*Workspace, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("workspace: resolve root %q: %w", root, err)
	}
	return &Workspace{
		Root:        absRoot,
		MaxFileSize: maxFileSize,
	}, nil
}

// Resolve maps path onto the workspace root. Paths that climb out of the root
// are rejected; symlinks are followed as if the root were the filesystem
// root, so a link cannot lead outside it.
func (w *Workspace) Resolve(path string) (string, error) {
	rel := filepath.Clean(path)
	if filepath.IsAbs(rel) {
		inside, err := filepath.Rel(w.Root, rel)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrPathEscape, path)
		}
		rel = inside
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscape, path)
	}

	full, err := securejoin.SecureJoin(w.Root, rel)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrPathEscape, path, err)
	}
	return full, nil
}

// ReadSource returns the contents of the source file at path.
func (w *Workspace) ReadSource(path string) (string, error) {
	full, err := w.Resolve(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(full)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	if w.MaxFileSize > 0 && info.Size() > int64(w.MaxFileSize) {
		return "", fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, path, info.Size())
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	return string(data), nil
}

// WriteOutput writes content to path, creating parent directories, and
// returns the absolute path written.
func (w *Workspace) WriteOutput(path, content string) (string, error) {
	full, err := w.Resolve(path)
	if err != nil {
		return "", err
	}

	if w.MaxFileSize > 0 && len(content) > w.MaxFileSize {
		return "", fmt.Errorf("%w: %d bytes for %s", ErrFileTooLarge, len(content), path)
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return full, nil
}
