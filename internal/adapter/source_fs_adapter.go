// Package adapter contains infrastructure adapters for the testforge CLI.
package adapter

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	m "testforge.dev/pkg/testforge/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning projects and persisting generated tests. It hides
// direct `os` access so the pipeline can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses root depth-first. Returning filepath.SkipDir from fn on a
	// directory prunes that subtree.
	Walk(ctx context.Context, root m.Path, fn fs.WalkDirFunc) error

	// ReadFile loads a file from disk and returns its raw bytes.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// IgnoreRules compiles the .gitignore found directly under root.
	// It returns nil without error when root has no .gitignore.
	IgnoreRules(ctx context.Context, root m.Path) (*ignore.GitIgnore, error)

	// MkdirAll creates path and any missing parents.
	MkdirAll(ctx context.Context, path m.Path, perm os.FileMode) error

	// AppendFile opens path for appending, creating it when absent, and writes
	// content with a single call. Existing bytes are never touched.
	AppendFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// AbsPath resolves path against the working directory.
	AbsPath(ctx context.Context, path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over entries under root and stops early when ctx is cancelled.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(string(root), func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(path, d, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from discovery or the --file flag
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// IgnoreRules reads root/.gitignore into a matcher.
func (a *LocalSourceFSAdapter) IgnoreRules(ctx context.Context, root m.Path) (*ignore.GitIgnore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines, err := readIgnoreFile(filepath.Join(string(root), ".gitignore"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	if len(lines) == 0 {
		return nil, nil
	}

	return ignore.CompileIgnoreLines(lines...), nil
}

func readIgnoreFile(path string) ([]string, error) {
	// #nosec G304 - fixed file name under a user supplied root
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() { _ = file.Close() }()

	var lines []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines = append(lines, line)
	}

	return lines, scanner.Err()
}

// MkdirAll creates a directory tree.
func (a *LocalSourceFSAdapter) MkdirAll(ctx context.Context, path m.Path, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.MkdirAll(string(path), perm)
}

// AppendFile appends content to path in one write.
func (a *LocalSourceFSAdapter) AppendFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// #nosec G304 - destination chosen by the validated plan
	file, err := os.OpenFile(string(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return err
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// AbsPath returns the absolute form of path.
func (a *LocalSourceFSAdapter) AbsPath(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
