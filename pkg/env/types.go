// pkg/env/types.go
package env

import "strings"

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
}

// Include returns the include flags joined for a command line
func (f *CompilerFlags) Include() string {
	return strings.Join(f.IncludeFlags, " ")
}

// Library returns the -L flags followed by the -l flags
func (f *CompilerFlags) Library() string {
	all := make([]string, 0, len(f.LibraryFlags)+len(f.LinkFlags))
	all = append(all, f.LibraryFlags...)
	all = append(all, f.LinkFlags...)
	return strings.Join(all, " ")
}
