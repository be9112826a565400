package core

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsKeepsInsertionOrder(t *testing.T) {
	p := NewParams()
	require.NoError(t, p.Set("B", "1"))
	require.NoError(t, p.Set("A", "2"))
	require.NoError(t, p.Set("B", "3")) // overwrite keeps position

	assert.Equal(t, []string{"B", "A"}, p.Keys())
	assert.Equal(t, "3", p.Value("B"))
	assert.Equal(t, 2, p.Len())

	_, ok := p.Get("C")
	assert.False(t, ok)
	assert.Equal(t, "", p.Value("C"))
}

func TestParamsSetDefault(t *testing.T) {
	p := NewParams()
	p.SetDefault("INSTALL_ROOT", "/")
	p.SetDefault("INSTALL_ROOT", "/opt")
	assert.Equal(t, "/", p.Value("INSTALL_ROOT"))
}

func TestParamsFreeze(t *testing.T) {
	p := NewParams()
	require.NoError(t, p.Set("GD_INCLUDE", "-I/usr/include"))
	p.Freeze("GD_INCLUDE")

	err := p.Set("GD_INCLUDE", "-I/other")
	assert.ErrorIs(t, err, ErrFrozenKey)
	assert.Equal(t, "-I/usr/include", p.Value("GD_INCLUDE"))

	assert.NoError(t, p.Set("GD_LIBRARY", "-lgd"))
}

func TestParamsEnviron(t *testing.T) {
	p := NewParams()
	require.NoError(t, p.Set("JOBS", "8"))
	require.NoError(t, p.Set("D8_OBJECTS", "a.o b.o"))

	env := p.Environ()
	assert.Contains(t, env, "JOBS=8")
	assert.Contains(t, env, "D8_OBJECTS=a.o b.o")
	// params come after the inherited environment so they win
	assert.Equal(t, "D8_OBJECTS=a.o b.o", env[len(env)-1])
}

func TestParamsWriteLog(t *testing.T) {
	p := NewParams()
	long := strings.Repeat("x", 100)
	require.NoError(t, p.Set("SHORT", "abc"))
	require.NoError(t, p.Set("LONG", long))

	path := filepath.Join(t.TempDir(), "build-tea.log")
	var console bytes.Buffer
	require.NoError(t, p.WriteLog(path, &console))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SHORT = abc\nLONG = "+long+"\n", string(data))

	assert.Equal(t, "    SHORT = abc\n    LONG = "+long[:70]+"\n", console.String())
}

func TestParamsWriteLogTruncatesByCharacter(t *testing.T) {
	p := NewParams()
	value := strings.Repeat("x", 69) + "é/Applications/Xcode.app"
	require.NoError(t, p.Set("PATHS", value))

	var console bytes.Buffer
	require.NoError(t, p.WriteLog(filepath.Join(t.TempDir(), "log"), &console))

	line := strings.TrimSuffix(strings.TrimPrefix(console.String(), "    PATHS = "), "\n")
	assert.True(t, utf8.ValidString(line))
	assert.Equal(t, strings.Repeat("x", 69)+"é", line)
	assert.Equal(t, 70, utf8.RuneCountInString(line))
}

func TestParamsWriteLogNilConsole(t *testing.T) {
	p := NewParams()
	require.NoError(t, p.Set("A", "b"))
	assert.NoError(t, p.WriteLog(filepath.Join(t.TempDir(), "log"), nil))
}

func TestParamsWriteValue(t *testing.T) {
	p := NewParams()
	require.NoError(t, p.Set("D8_OBJECTS", "/v8/a.o /v8/b.o"))

	path := filepath.Join(t.TempDir(), "d8_objects.txt")
	require.NoError(t, p.WriteValue("D8_OBJECTS", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/v8/a.o /v8/b.o", string(data))

	assert.Error(t, p.WriteValue("MISSING", path))
}

func TestParamsWriteEnvScript(t *testing.T) {
	p := NewParams()
	require.NoError(t, p.Set("GD_INCLUDE", "-I/usr/local/include"))
	require.NoError(t, p.Set("LIBPQ_LIBRARY", "-L/x -lpq"))
	require.NoError(t, p.Set("EMPTY", ""))

	path := filepath.Join(t.TempDir(), "build-tea.env")
	require.NoError(t, p.WriteEnvScript(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	exported := make(map[string][]string)
	for _, line := range strings.Split(string(data), "\n") {
		rest, ok := strings.CutPrefix(line, "export ")
		if !ok {
			continue
		}
		key, value, _ := strings.Cut(rest, "=")
		words, err := shellquote.Split(value)
		require.NoError(t, err, line)
		exported[key] = words
	}

	assert.Equal(t, map[string][]string{
		"GD_INCLUDE":    {"-I/usr/local/include"},
		"LIBPQ_LIBRARY": {"-L/x -lpq"},
		"EMPTY":         {""},
	}, exported)
}
