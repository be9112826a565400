// pkg/ninja/open.go
package ninja

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// DescriptorPath returns where V8's build leaves the descriptor for target
// inside compileDir. An xz-compressed copy is used when the plain file is
// missing.
func DescriptorPath(compileDir, target string) string {
	name := strings.TrimPrefix(target, "./")
	plain := compileDir + "/obj/" + name + ".ninja"
	if _, err := os.Stat(plain); err != nil {
		if _, xzErr := os.Stat(plain + ".xz"); xzErr == nil {
			return plain + ".xz"
		}
	}
	return plain
}

type readCloser struct {
	io.Reader
	io.Closer
}

// Open opens a descriptor, decompressing it when the name ends in .xz
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening descriptor: %w", err)
	}

	if !strings.HasSuffix(path, ".xz") {
		return f, nil
	}

	xzReader, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating xz reader: %w", err)
	}
	return readCloser{Reader: xzReader, Closer: f}, nil
}
