// Package pkgconfig queries the pkg-config tool for compiler and linker flags.
package pkgconfig

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultPath is where teaconf expects pkg-config
const DefaultPath = "/usr/bin/pkg-config"

// Tool runs a pkg-config binary
type Tool struct {
	Path string
}

// New creates a Tool for the binary at path, or DefaultPath when path is empty
func New(path string) *Tool {
	if path == "" {
		path = DefaultPath
	}
	return &Tool{Path: path}
}

// CFlags returns `pkg-config --cflags <module>`
func (t *Tool) CFlags(ctx context.Context, module string) (string, error) {
	return t.query(ctx, "--cflags", module)
}

// Libs returns `pkg-config --libs <module>`
func (t *Tool) Libs(ctx context.Context, module string) (string, error) {
	return t.query(ctx, "--libs", module)
}

// query runs pkg-config and returns the first line of its output
func (t *Tool) query(ctx context.Context, flag, module string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, t.Path, flag, module)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("pkg-config %s %s: %w: %s", flag, module, err, msg)
		}
		return "", fmt.Errorf("pkg-config %s %s: %w", flag, module, err)
	}

	line, _, _ := strings.Cut(stdout.String(), "\n")
	return strings.TrimSpace(line), nil
}
