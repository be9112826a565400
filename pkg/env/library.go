// pkg/env/library.go
package env

import (
	"os"
	"regexp"
)

var libraryRe = regexp.MustCompile(`^lib(\w+)\.(dylib|a|so|dll)`)

// LibraryName returns the link name of a library file name
// (libssl.so.3 -> ssl) and whether the name looked like a library at all
func LibraryName(filename string) (string, bool) {
	m := libraryRe.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ListLibraryNames returns the distinct link names of the libraries in dir,
// in directory listing order
func ListLibraryNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	seen := make(map[string]bool) // libfoo.a and libfoo.dylib are both -lfoo

	for _, entry := range entries {
		name, ok := LibraryName(entry.Name())
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names, nil
}
