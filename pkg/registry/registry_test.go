package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	deps := Builtin()
	require.Len(t, deps, 3)

	assert.Equal(t, "libpq", deps[0].Name)
	assert.Equal(t, "gdlib", deps[1].PkgConfigName)
	assert.Equal(t, []string{"gdfx.h", "gd.h", "gd_io.h"}, deps[1].Includes)
	assert.Equal(t, []string{"libmemcached", "libmemcached-1.0", "libhashkit-1.0", "sasl"}, deps[2].IncludeDirs)

	for _, dep := range deps {
		assert.False(t, dep.Optional, dep.Name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deps.toml")
	content := `
[[dependency]]
name = "gd"
pkg_config = "gdlib"
includes_copy = ["gd.h"]

[[dependency]]
name = "sqlite3"
optional = true
libraries = ["sqlite3"]
includes_copy_recursive = ["sqlite"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	deps, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Dependency{
		{Name: "gd", PkgConfigName: "gdlib", Includes: []string{"gd.h"}},
		{Name: "sqlite3", PkgConfigName: "sqlite3", Optional: true, Libraries: []string{"sqlite3"}, IncludeDirs: []string{"sqlite"}},
	}, deps)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "registry: reading")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[dependency]\n"), 0644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse")

	noName := filepath.Join(dir, "noname.toml")
	require.NoError(t, os.WriteFile(noName, []byte("[[dependency]]\npkg_config = \"x\"\n"), 0644))
	_, err = Load(noName)
	assert.ErrorContains(t, err, "has no name")
}

func TestLoadOrBuiltin(t *testing.T) {
	deps, err := LoadOrBuiltin("")
	require.NoError(t, err)
	assert.Equal(t, Builtin(), deps)
}
