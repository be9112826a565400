// pkg/core/params.go
package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ErrFrozenKey indicates a write to a key that was frozen earlier in the run
var ErrFrozenKey = errors.New("key is frozen")

// consoleWidth is how much of a value is echoed when params are printed
const consoleWidth = 70

// Params is the configuration mapping shared by every step of a run.
// Keys keep their insertion order so logs read in the order values were produced.
type Params struct {
	keys   []string
	values map[string]string
	frozen map[string]bool
}

// NewParams creates an empty configuration mapping
func NewParams() *Params {
	return &Params{
		values: make(map[string]string),
		frozen: make(map[string]bool),
	}
}

// Set stores value under key
func (p *Params) Set(key, value string) error {
	if p.frozen[key] {
		return fmt.Errorf("setting %s: %w", key, ErrFrozenKey)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return nil
}

// SetDefault stores value under key only if key is not set yet
func (p *Params) SetDefault(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.Set(key, value)
	}
}

// Get returns the value for key and whether it was set
func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Value returns the value for key, or "" when unset
func (p *Params) Value(key string) string {
	return p.values[key]
}

// Freeze marks keys as read-only for the rest of the run
func (p *Params) Freeze(keys ...string) {
	for _, k := range keys {
		p.frozen[k] = true
	}
}

// Keys returns the keys in insertion order
func (p *Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of keys
func (p *Params) Len() int {
	return len(p.keys)
}

// Environ returns the process environment with every param appended as KEY=VALUE
func (p *Params) Environ() []string {
	env := os.Environ()
	for _, k := range p.keys {
		env = append(env, k+"="+p.values[k])
	}
	return env
}

// WriteLog writes every param as "key = value" to path and echoes each line,
// value truncated, to console (which may be nil)
func (p *Params) WriteLog(path string, console io.Writer) error {
	var b strings.Builder
	for _, k := range p.keys {
		v := p.values[k]
		fmt.Fprintf(&b, "%s = %s\n", k, v)

		if console != nil {
			if r := []rune(v); len(r) > consoleWidth {
				v = string(r[:consoleWidth])
			}
			fmt.Fprintf(console, "    %s = %s\n", k, v)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing log: %w", err)
	}
	return nil
}

// WriteValue writes the raw value of key to path
func (p *Params) WriteValue(key, path string) error {
	v, ok := p.values[key]
	if !ok {
		return fmt.Errorf("writing %s: key %s is not set", path, key)
	}
	if err := os.WriteFile(path, []byte(v), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteEnvScript writes a shell script exporting every param, so make can be
// re-run by hand with `. build-tea.env && make`
func (p *Params) WriteEnvScript(path string) error {
	var b strings.Builder
	b.WriteString("# generated by teaconf\n")
	for _, k := range p.keys {
		fmt.Fprintf(&b, "export %s=%s\n", k, shellquote.Join(p.values[k]))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing env script: %w", err)
	}
	return nil
}
