package domain

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"testforge.dev/pkg/testforge/internal/adapter"
	adaptermocks "testforge.dev/pkg/testforge/internal/adapter/mocks"
	m "testforge.dev/pkg/testforge/internal/model"
)

func newLocalDiscovery() Discovery {
	return NewDiscovery(adapter.NewLocalSourceFSAdapter())
}

func TestDiscover_PrunesIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.py"), "print('hi')\n")
	writeFile(t, filepath.Join(root, "venv", "skip.py"), "x = 1\n")
	writeFile(t, filepath.Join(root, "tests", "skip.py"), "x = 1\n")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref: refs/heads/main\n")

	paths, err := newLocalDiscovery().Discover(context.Background(), DiscoverArgs{Roots: []m.Path{m.Path(root)}})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "app.py"))}, paths)
}

func TestDiscover_PrunesNestedIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "core.go"), "package pkg\n")
	writeFile(t, filepath.Join(root, "pkg", "tests", "core_test.go"), "package pkg\n")
	writeFile(t, filepath.Join(root, "svc", "venv", "lib", "site.py"), "x = 1\n")
	writeFile(t, filepath.Join(root, "svc", "main.rs"), "fn main() {}\n")

	paths, err := newLocalDiscovery().Discover(context.Background(), DiscoverArgs{Roots: []m.Path{m.Path(root)}})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "pkg", "core.go")),
		m.Path(filepath.Join(root, "svc", "main.rs")),
	}, paths)
}

func TestDiscover_DirectoryNamesMatchExactly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tests_data", "a.py"), "x = 1\n")
	writeFile(t, filepath.Join(root, "my_venv", "b.py"), "x = 1\n")
	writeFile(t, filepath.Join(root, "test", "c.py"), "x = 1\n")

	paths, err := newLocalDiscovery().Discover(context.Background(), DiscoverArgs{Roots: []m.Path{m.Path(root)}})
	require.NoError(t, err)

	assert.Len(t, paths, 3)
}

func TestDiscover_SelectsOnlyRecognizedExtensions(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.py", "b.js", "c.ts", "D.java", "e.go", "f.rs"} {
		writeFile(t, filepath.Join(root, name), "x\n")
	}

	for _, name := range []string{"g.pyc", "h.tsx", "i.jsx", "README.md", "Makefile", "j.py.bak", "k.PY"} {
		writeFile(t, filepath.Join(root, name), "x\n")
	}

	paths, err := newLocalDiscovery().Discover(context.Background(), DiscoverArgs{Roots: []m.Path{m.Path(root)}})
	require.NoError(t, err)

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(string(p)))
	}

	assert.ElementsMatch(t, []string{"a.py", "b.js", "c.ts", "D.java", "e.go", "f.rs"}, names)
}

func TestDiscover_SingleFileBypassesFilters(t *testing.T) {
	paths, err := newLocalDiscovery().Discover(context.Background(), DiscoverArgs{
		File:    "venv/notes.txt",
		Exclude: []string{".*"},
	})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{"venv/notes.txt"}, paths)
}

func TestDiscover_ExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.py"), "x\n")
	writeFile(t, filepath.Join(root, "schema_pb2.py"), "x\n")

	paths, err := newLocalDiscovery().Discover(context.Background(), DiscoverArgs{
		Roots:   []m.Path{m.Path(root)},
		Exclude: []string{`_pb2\.py$`},
	})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "keep.py"))}, paths)
}

func TestDiscover_InvalidExcludePattern(t *testing.T) {
	_, err := newLocalDiscovery().Discover(context.Background(), DiscoverArgs{
		Roots:   []m.Path{m.Path(t.TempDir())},
		Exclude: []string{"("},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestDiscover_Gitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "build/\n*_generated.go\n")
	writeFile(t, filepath.Join(root, "main.go"), "package main\n")
	writeFile(t, filepath.Join(root, "api_generated.go"), "package main\n")
	writeFile(t, filepath.Join(root, "build", "out.js"), "x\n")

	args := DiscoverArgs{Roots: []m.Path{m.Path(root)}, UseGitignore: true}

	paths, err := newLocalDiscovery().Discover(context.Background(), args)
	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "main.go"))}, paths)

	args.UseGitignore = false

	paths, err = newLocalDiscovery().Discover(context.Background(), args)
	require.NoError(t, err)
	assert.Len(t, paths, 3)
}

func TestDiscover_DeduplicatesOverlappingRoots(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "a.ts"), "x\n")
	writeFile(t, filepath.Join(root, "b.ts"), "x\n")

	paths, err := newLocalDiscovery().Discover(context.Background(), DiscoverArgs{
		Roots: []m.Path{m.Path(root), m.Path(filepath.Join(root, "src"))},
	})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "b.ts")),
		m.Path(filepath.Join(root, "src", "a.ts")),
	}, paths)
}

func TestDiscover_RootErrors(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.py")
	writeFile(t, file, "x\n")

	_, err := newLocalDiscovery().Discover(context.Background(), DiscoverArgs{Roots: []m.Path{m.Path(filepath.Join(root, "missing"))}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root path error")

	_, err = newLocalDiscovery().Discover(context.Background(), DiscoverArgs{Roots: []m.Path{m.Path(file)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestDiscover_WalkFailureIsReturned(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	walkErr := errors.New("walk exploded")

	fsAdapter.EXPECT().FileInfo(mock.Anything, m.Path("root")).Return(dirInfo{}, nil)
	fsAdapter.EXPECT().Walk(mock.Anything, m.Path("root"), mock.Anything).Return(walkErr)

	_, err := NewDiscovery(fsAdapter).Discover(context.Background(), DiscoverArgs{Roots: []m.Path{"root"}})
	require.ErrorIs(t, err, walkErr)
}

func TestDiscover_UnreadableEntriesAreSkipped(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)

	fsAdapter.EXPECT().FileInfo(mock.Anything, m.Path("root")).Return(dirInfo{}, nil)
	fsAdapter.EXPECT().Walk(mock.Anything, m.Path("root"), mock.Anything).
		RunAndReturn(func(_ context.Context, _ m.Path, fn fs.WalkDirFunc) error {
			if err := fn("root/locked", nil, fs.ErrPermission); err != nil {
				return err
			}

			return fn("root/ok.py", fileEntry{name: "ok.py"}, nil)
		})

	paths, err := NewDiscovery(fsAdapter).Discover(context.Background(), DiscoverArgs{Roots: []m.Path{"root"}})
	require.NoError(t, err)
	assert.Equal(t, []m.Path{"root/ok.py"}, paths)
}

func TestDiscover_RootInsideIgnoredDirectory(t *testing.T) {
	proj := filepath.Join(t.TempDir(), "proj")
	writeFile(t, filepath.Join(proj, "main.py"), "x = 1\n")
	writeFile(t, filepath.Join(proj, "tests", "sub", "a.py"), "x = 1\n")

	paths, err := newLocalDiscovery().Discover(context.Background(), DiscoverArgs{Roots: []m.Path{
		m.Path(filepath.Join(proj, "tests", "sub")),
		m.Path(proj),
	}})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{m.Path(filepath.Join(proj, "main.py"))}, paths)
}

func TestDiscover_RootNamedLikeIgnoredDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "venv")
	writeFile(t, filepath.Join(root, "a.py"), "x = 1\n")

	paths, err := newLocalDiscovery().Discover(context.Background(), DiscoverArgs{Roots: []m.Path{m.Path(root)}})
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestHasIgnoredSegment(t *testing.T) {
	assert.True(t, HasIgnoredSegment("proj/tests/sub"))
	assert.True(t, HasIgnoredSegment(".git"))
	assert.True(t, HasIgnoredSegment("a/venv/"))
	assert.False(t, HasIgnoredSegment("."))
	assert.False(t, HasIgnoredSegment("../src/tests_data"))
}

func TestIsIgnoredDirAndRecognizedSource(t *testing.T) {
	assert.True(t, IsIgnoredDir("venv"))
	assert.True(t, IsIgnoredDir(".git"))
	assert.False(t, IsIgnoredDir("Tests"))
	assert.False(t, IsIgnoredDir(".venv"))

	assert.True(t, IsRecognizedSource("a/b/c.java"))
	assert.False(t, IsRecognizedSource("archive.tar.gz"))
}
