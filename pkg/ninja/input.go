// pkg/ninja/input.go
package ninja

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ErrUnknownInput indicates a link input that is neither an object nor an archive
	ErrUnknownInput = errors.New("unknown link input extension")

	// ErrUnparseableArchive indicates an archive path not shaped like <dir>/lib<name>.a
	ErrUnparseableArchive = errors.New("could not parse library name")
)

const (
	objectExt  = ".o"
	archiveExt = ".a"
)

var archiveRe = regexp.MustCompile(`^(.*)/lib(\w+)\.a$`)

// Input is a classified link input: Object, Archive or Unrecognized
type Input interface {
	input()
}

// Object is a relocatable object linked in directly
type Object struct {
	Path string
}

// Archive is a static library, linked as -L<Dir> -l<Name>
type Archive struct {
	Dir  string
	Name string
}

// Unrecognized is a link input teaconf does not know how to pass on
type Unrecognized struct {
	Path string
	Err  error
}

func (Object) input()       {}
func (Archive) input()      {}
func (Unrecognized) input() {}

// ClassifyInput classifies a link input path by its extension
func ClassifyInput(path string) Input {
	switch {
	case strings.HasSuffix(path, objectExt):
		return Object{Path: path}

	case strings.HasSuffix(path, archiveExt):
		m := archiveRe.FindStringSubmatch(path)
		if m == nil {
			return Unrecognized{
				Path: path,
				Err:  fmt.Errorf("%w - %s", ErrUnparseableArchive, path),
			}
		}
		return Archive{Dir: m[1], Name: m[2]}

	default:
		return Unrecognized{
			Path: path,
			Err:  fmt.Errorf("%w %q - %s", ErrUnknownInput, filepath.Ext(path), path),
		}
	}
}
