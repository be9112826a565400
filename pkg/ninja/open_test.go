package ninja

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

const sampleDescriptor = "cflags = -O2\nbuild ./d8: link obj/a.o obj/x/libv8.a ||\n"

func writeXZ(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = io.WriteString(w, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d8.ninja")
	require.NoError(t, os.WriteFile(path, []byte(sampleDescriptor), 0644))

	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleDescriptor, string(data))
}

func TestOpenXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d8.ninja.xz")
	writeXZ(t, path, sampleDescriptor)

	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleDescriptor, string(data))
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing.ninja"))
	assert.ErrorContains(t, err, "opening descriptor")

	bogus := filepath.Join(dir, "bogus.ninja.xz")
	require.NoError(t, os.WriteFile(bogus, []byte("not xz"), 0644))
	_, err = Open(bogus)
	assert.ErrorContains(t, err, "creating xz reader")
}

func TestDescriptorPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "obj"), 0755))

	plain := dir + "/obj/d8.ninja"
	assert.Equal(t, plain, DescriptorPath(dir, "./d8"), "missing files resolve to the plain name")

	writeXZ(t, plain+".xz", sampleDescriptor)
	assert.Equal(t, plain+".xz", DescriptorPath(dir, "./d8"))

	require.NoError(t, os.WriteFile(plain, []byte(sampleDescriptor), 0644))
	assert.Equal(t, plain, DescriptorPath(dir, "./d8"))
}

func TestScrapeFileXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d8.ninja.xz")
	writeXZ(t, path, sampleDescriptor)

	p := newParams(t)
	lt, err := newTestScraper().ScrapeFile(path, p)
	require.NoError(t, err)
	assert.Equal(t, compileDir+"/obj/a.o", lt.Objects[0])
	assert.Equal(t, "-O2", p.Value("D8_CFLAGS"))
}
