package registry

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Dependency describes one third-party library TeaJS builds against
type Dependency struct {
	Name          string   `toml:"name"`                    // key stem: NAME_INCLUDE, NAME_LIBRARY; Homebrew formula
	PkgConfigName string   `toml:"pkg_config"`              // pkg-config module
	Optional      bool     `toml:"optional"`                // skip instead of failing when unresolvable
	Includes      []string `toml:"includes_copy"`           // headers staged one by one
	IncludeDirs   []string `toml:"includes_copy_recursive"` // header trees staged recursively
	Libraries     []string `toml:"libraries"`               // explicit link names
}

// file is the layout of a deps.toml file
type file struct {
	Dependencies []Dependency `toml:"dependency"`
}

// Builtin returns the dependencies TeaJS needs out of the box
func Builtin() []Dependency {
	return []Dependency{
		{
			Name:          "libpq",
			PkgConfigName: "libpq",
		},
		{
			Name:          "gd",
			PkgConfigName: "gdlib",
			Includes:      []string{"gdfx.h", "gd.h", "gd_io.h"},
		},
		{
			Name:          "memcached",
			PkgConfigName: "libmemcached",
			IncludeDirs:   []string{"libmemcached", "libmemcached-1.0", "libhashkit-1.0", "sasl"},
		},
	}
}

// Load reads dependencies from a deps.toml file:
//
//	[[dependency]]
//	name = "gd"
//	pkg_config = "gdlib"
//	includes_copy = ["gd.h"]
func Load(path string) ([]Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: reading %s: %w", path, err)
	}

	var f file
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", path, err)
	}

	for i := range f.Dependencies {
		dep := &f.Dependencies[i]
		if dep.Name == "" {
			return nil, fmt.Errorf("registry: dependency #%d in '%s' has no name", i+1, path)
		}
		if dep.PkgConfigName == "" {
			dep.PkgConfigName = dep.Name
		}
	}

	return f.Dependencies, nil
}

// LoadOrBuiltin loads path, or returns Builtin when path is empty
func LoadOrBuiltin(path string) ([]Dependency, error) {
	if path == "" {
		return Builtin(), nil
	}
	return Load(path)
}
