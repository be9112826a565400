// layout.go
package brew

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arc-language/teaconf/pkg/core"
	"github.com/arc-language/teaconf/pkg/env"
)

// ErrFormulaMissing indicates <prefix>/opt/<formula> does not exist
var ErrFormulaMissing = errors.New("path does not exist")

// Layout is a Homebrew installation rooted at Prefix
type Layout struct {
	Prefix string
}

// NewLayout creates a layout for the Homebrew prefix
func NewLayout(prefix string) *Layout {
	return &Layout{Prefix: prefix}
}

// FormulaPath returns <prefix>/opt/<formula>
func (l *Layout) FormulaPath(formula string) string {
	return filepath.Join(l.Prefix, OptDir, formula)
}

// Flags returns the include and library flags for an installed formula.
// Libraries are linked by the names given, or when none are given, by every
// lib<name> found in the formula's lib directory.
func (l *Layout) Flags(formula string, libraries []string) (*env.CompilerFlags, error) {
	root := l.FormulaPath(formula)
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w - %s", ErrFormulaMissing, root)
	}

	libDir := filepath.Join(root, "lib")

	names := libraries
	if len(names) == 0 {
		var err error
		names, err = env.ListLibraryNames(libDir)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", libDir, err)
		}
	}

	flags := &env.CompilerFlags{
		IncludeFlags: []string{
			"-I" + filepath.Join(root, "include"),
			"-I" + filepath.Join(l.Prefix, "include") + "/",
		},
		LibraryFlags: []string{"-L" + libDir},
	}
	for _, name := range core.Unique(names) {
		flags.LinkFlags = append(flags.LinkFlags, "-l"+name)
	}

	return flags, nil
}
