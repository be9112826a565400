package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestStageFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "gd.h"), "#define GD_H 1\n")
	writeFile(t, filepath.Join(root, "sub", "gd_io.h"), "#define GD_IO_H 1\n")

	s := &Stager{Roots: []string{root}, Dir: filepath.Join(t.TempDir(), "3rd-party")}

	dst, err := s.StageFile("gd.h")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir, "gd.h"), dst)
	assert.Equal(t, "#define GD_H 1\n", readFile(t, dst))

	dst, err = s.StageFile("sub/gd_io.h")
	require.NoError(t, err)
	assert.Equal(t, "#define GD_IO_H 1\n", readFile(t, dst))
}

func TestStageFileFirstRootWins(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(second, "a.h"), "second")
	writeFile(t, filepath.Join(second, "b.h"), "second")
	writeFile(t, filepath.Join(first, "b.h"), "first")

	s := &Stager{Roots: []string{first, second}, Dir: t.TempDir()}

	dst, err := s.StageFile("a.h")
	require.NoError(t, err)
	assert.Equal(t, "second", readFile(t, dst))

	dst, err = s.StageFile("b.h")
	require.NoError(t, err)
	assert.Equal(t, "first", readFile(t, dst))
}

func TestStageFileNotFound(t *testing.T) {
	s := &Stager{Roots: []string{t.TempDir()}, Dir: t.TempDir()}

	_, err := s.StageFile("gd.h")
	assert.ErrorIs(t, err, ErrHeaderNotFound)
	assert.Contains(t, err.Error(), "gd.h")
}

func TestStageDirReplacesExistingTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "libmemcached-1.0", "memcached.h"), "memcached")
	writeFile(t, filepath.Join(root, "libmemcached-1.0", "struct", "server.h"), "server")
	require.NoError(t, os.Symlink("memcached.h", filepath.Join(root, "libmemcached-1.0", "alias.h")))

	s := &Stager{Roots: []string{root}, Dir: t.TempDir()}
	stale := filepath.Join(s.Dir, "libmemcached-1.0", "stale.h")
	writeFile(t, stale, "old")

	dst, err := s.StageDir("libmemcached-1.0")
	require.NoError(t, err)

	assert.Equal(t, "memcached", readFile(t, filepath.Join(dst, "memcached.h")))
	assert.Equal(t, "server", readFile(t, filepath.Join(dst, "struct", "server.h")))
	assert.Equal(t, "memcached", readFile(t, filepath.Join(dst, "alias.h")))
	assert.NoFileExists(t, stale)

	// staging again gives the same tree
	_, err = s.StageDir("libmemcached-1.0")
	require.NoError(t, err)
	assert.Equal(t, "server", readFile(t, filepath.Join(dst, "struct", "server.h")))
}

func TestStageDirNotFound(t *testing.T) {
	s := &Stager{Roots: []string{t.TempDir()}, Dir: t.TempDir()}

	_, err := s.StageDir("sasl")
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestStageRejectsPathsOutsideStagingDir(t *testing.T) {
	base := t.TempDir()
	keep := filepath.Join(base, "keep.h")
	writeFile(t, keep, "keep")

	root := filepath.Join(base, "usr", "include")
	writeFile(t, filepath.Join(root, "gd.h"), "gd")

	s := &Stager{Roots: []string{root}, Dir: filepath.Join(base, "out", "3rd-party")}

	for _, rel := range []string{"../..", "..", "../keep.h", "a/../../x", "/etc", "."} {
		_, err := s.StageDir(rel)
		assert.ErrorIs(t, err, ErrUnsafePath, rel)

		_, err = s.StageFile(rel)
		assert.ErrorIs(t, err, ErrUnsafePath, rel)
	}
	assert.Equal(t, "keep", readFile(t, keep))

	// inner ".." that stays inside is fine
	dst, err := s.StageFile("sub/../gd.h")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir, "gd.h"), dst)
}
