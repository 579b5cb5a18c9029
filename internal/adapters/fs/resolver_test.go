package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fred/internal/adapters/fs"
)

func TestResolver_Resolve_Success(t *testing.T) {
	tmpDir := t.TempDir()
	for _, f := range []string{"a.txt", "b.txt", "c.log"} {
		writeFile(t, filepath.Join(tmpDir, f), "content")
	}

	resolved, err := fs.NewResolver().Resolve(tmpDir, "*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, relPaths(t, tmpDir, resolved))
}

func TestResolver_Resolve_GlobError(t *testing.T) {
	_, err := fs.NewResolver().Resolve(t.TempDir(), "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to glob path")
}

func TestResolver_Resolve_NoMatches(t *testing.T) {
	_, err := fs.NewResolver().Resolve(t.TempDir(), "*.nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input not found")
}

func TestResolver_Resolve_DeduplicatesAndSorts(t *testing.T) {
	tmpDir := t.TempDir()
	for _, f := range []string{"z.go", "a.go", "m.txt"} {
		writeFile(t, filepath.Join(tmpDir, f), "content")
	}

	resolved, err := fs.NewResolver().Resolve(tmpDir, "*.go", "a.*", "m.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "m.txt", "z.go"}, relPaths(t, tmpDir, resolved))
}

func TestResolver_Resolve_AbsolutePattern(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "x.txt"), "content")

	resolved, err := fs.NewResolver().Resolve("/elsewhere", filepath.Join(tmpDir, "*.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "x.txt")}, resolved)
}

func TestResolver_Glob(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "b.txt"), "b")
	writeFile(t, filepath.Join(tmpDir, "a.txt"), "a")

	source, err := fs.NewResolver().Glob(tmpDir, "*.txt")
	require.NoError(t, err)

	var got []string
	for handle, srcErr := range source.Files() {
		require.NoError(t, srcErr)
		abs, err := handle.AbsPath()
		require.NoError(t, err)
		got = append(got, abs)
	}
	assert.Equal(t, []string{"a.txt", "b.txt"}, relPaths(t, tmpDir, got))
}
