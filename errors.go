// errors.go
package teaconf

import (
	"fmt"

	"github.com/arc-language/teaconf/pkg/brew"
	"github.com/arc-language/teaconf/pkg/core"
	"github.com/arc-language/teaconf/pkg/ninja"
	"github.com/arc-language/teaconf/pkg/platform"
	"github.com/arc-language/teaconf/pkg/resolver"
)

var (
	// ErrNoPackageManager indicates neither pkg-config nor Homebrew was found
	ErrNoPackageManager = platform.ErrNoPackageManager

	// ErrFormulaMissing indicates a dependency is not installed under the Homebrew prefix
	ErrFormulaMissing = brew.ErrFormulaMissing

	// ErrHeaderNotFound indicates a header to stage was not found in any system root
	ErrHeaderNotFound = resolver.ErrHeaderNotFound

	// ErrUnsafePath indicates a staged header path outside the staging directory
	ErrUnsafePath = resolver.ErrUnsafePath

	// ErrUnknownInput indicates a link input with an unknown extension
	ErrUnknownInput = ninja.ErrUnknownInput

	// ErrUnparseableArchive indicates an archive whose library name could not be parsed
	ErrUnparseableArchive = ninja.ErrUnparseableArchive

	// ErrTargetNotFound indicates the descriptor has no link rule for the target
	ErrTargetNotFound = ninja.ErrTargetNotFound

	// ErrFrozenKey indicates a param was written after it was frozen
	ErrFrozenKey = core.ErrFrozenKey
)

// Error wraps an error with the step of the run that failed
type Error struct {
	Op  string // Step that failed
	Dep string // Dependency name if applicable
	Err error  // Underlying error
}

func (e *Error) Error() string {
	if e.Dep != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Dep, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
