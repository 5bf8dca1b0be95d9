package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"testforge.dev/pkg/testforge/internal/adapter"
	m "testforge.dev/pkg/testforge/internal/model"
)

// RecognizedExtensions are the source extensions discovery selects.
var RecognizedExtensions = map[string]struct{}{
	".py":   {},
	".js":   {},
	".ts":   {},
	".java": {},
	".go":   {},
	".rs":   {},
}

// IgnoredDirs are directory names whose whole subtree is pruned.
var IgnoredDirs = map[string]struct{}{
	"venv":  {},
	"tests": {},
	".git":  {},
}

// DiscoverArgs selects what to discover. A non-empty File switches to
// single-file mode and bypasses every filter.
type DiscoverArgs struct {
	File         m.Path
	Roots        []m.Path
	Exclude      []string
	UseGitignore bool
}

// Discovery produces the candidate source files of a run.
type Discovery interface {
	Discover(ctx context.Context, args DiscoverArgs) ([]m.Path, error)
}

type discovery struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewDiscovery constructs a Discovery walking through fsAdapter.
func NewDiscovery(fsAdapter adapter.SourceFSAdapter) Discovery {
	return &discovery{fsAdapter: fsAdapter}
}

// IsRecognizedSource reports whether the final extension of path is selected.
func IsRecognizedSource(path string) bool {
	_, ok := RecognizedExtensions[filepath.Ext(path)]
	return ok
}

// IsIgnoredDir reports whether name is exactly one of IgnoredDirs.
func IsIgnoredDir(name string) bool {
	_, ok := IgnoredDirs[name]
	return ok
}

// HasIgnoredSegment reports whether any element of path is an ignored
// directory name.
func HasIgnoredSegment(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if IsIgnoredDir(segment) {
			return true
		}
	}

	return false
}

func (d *discovery) Discover(ctx context.Context, args DiscoverArgs) ([]m.Path, error) {
	if args.File != "" {
		slog.Debug("Single file mode", "path", args.File)
		return []m.Path{args.File}, nil
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	roots := args.Roots
	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	seen := make(map[m.Path]struct{})

	var paths []m.Path

	for _, root := range roots {
		found, err := d.walkRoot(ctx, root, excludes, args.UseGitignore)
		if err != nil {
			return nil, err
		}

		for _, path := range found {
			if _, dup := seen[path]; dup {
				continue
			}

			seen[path] = struct{}{}
			paths = append(paths, path)
		}
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	slog.Info("Discovered sources", "roots", len(roots), "count", len(paths))

	return paths, nil
}

func (d *discovery) walkRoot(ctx context.Context, root m.Path, excludes []*regexp.Regexp, useGitignore bool) ([]m.Path, error) {
	info, err := d.fsAdapter.FileInfo(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("root path error: %s is not a directory", root)
	}

	if HasIgnoredSegment(string(root)) {
		slog.Debug("Root lies inside an ignored directory", "root", root)
		return nil, nil
	}

	var rules *ignore.GitIgnore

	if useGitignore {
		rules, err = d.fsAdapter.IgnoreRules(ctx, root)
		if err != nil {
			slog.Warn("Failed to read .gitignore", "root", root, "error", err)
		}
	}

	var found []m.Path

	err = d.fsAdapter.Walk(ctx, root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == string(root) {
				return walkErr
			}

			slog.Warn("Skipping unreadable path", "path", path, "error", walkErr)

			return nil
		}

		if entry.IsDir() {
			if IsIgnoredDir(entry.Name()) || matchesGitignore(rules, string(root), path, true) {
				slog.Debug("Pruning directory", "path", path)
				return filepath.SkipDir
			}

			return nil
		}

		if !IsRecognizedSource(path) {
			return nil
		}

		if matchesExclude(excludes, path) || matchesGitignore(rules, string(root), path, false) {
			slog.Debug("Excluded source", "path", path)
			return nil
		}

		found = append(found, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return found, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func matchesExclude(excludes []*regexp.Regexp, path string) bool {
	for _, re := range excludes {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

func matchesGitignore(rules *ignore.GitIgnore, root, path string, isDir bool) bool {
	if rules == nil {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return false
	}

	rel = filepath.ToSlash(rel)
	if isDir {
		return rules.MatchesPath(rel) || rules.MatchesPath(rel+"/")
	}

	return rules.MatchesPath(rel)
}
