// pkg/resolver/source.go
package resolver

import (
	"context"
	"fmt"

	"github.com/arc-language/teaconf/pkg/brew"
	"github.com/arc-language/teaconf/pkg/pkgconfig"
	"github.com/arc-language/teaconf/pkg/platform"
	"github.com/arc-language/teaconf/pkg/registry"
)

// Flags are the resolved flag strings of one dependency
type Flags struct {
	Include string
	Library string
}

// Source produces flags for a dependency with one discovery strategy
type Source interface {
	// Name returns the strategy name
	Name() string

	// Flags resolves a dependency
	Flags(ctx context.Context, dep *registry.Dependency) (*Flags, error)
}

// PkgConfigSource resolves dependencies with pkg-config
type PkgConfigSource struct {
	tool *pkgconfig.Tool
}

// NewPkgConfigSource creates a source running the pkg-config binary at path
func NewPkgConfigSource(path string) *PkgConfigSource {
	return &PkgConfigSource{tool: pkgconfig.New(path)}
}

// Name returns the strategy name
func (s *PkgConfigSource) Name() string {
	return string(platform.PkgConfig)
}

// Flags runs pkg-config --cflags and --libs for the dependency's module
func (s *PkgConfigSource) Flags(ctx context.Context, dep *registry.Dependency) (*Flags, error) {
	include, err := s.tool.CFlags(ctx, dep.PkgConfigName)
	if err != nil {
		return nil, err
	}
	library, err := s.tool.Libs(ctx, dep.PkgConfigName)
	if err != nil {
		return nil, err
	}
	return &Flags{Include: include, Library: library}, nil
}

// BrewSource resolves dependencies from a Homebrew prefix
type BrewSource struct {
	strategy platform.Strategy
	layout   *brew.Layout
}

// NewBrewSource creates a source for the Homebrew prefix
func NewBrewSource(strategy platform.Strategy, prefix string) *BrewSource {
	return &BrewSource{strategy: strategy, layout: brew.NewLayout(prefix)}
}

// Name returns the strategy name
func (s *BrewSource) Name() string {
	return string(s.strategy)
}

// Flags reads the formula's include and lib directories
func (s *BrewSource) Flags(ctx context.Context, dep *registry.Dependency) (*Flags, error) {
	cf, err := s.layout.Flags(dep.Name, dep.Libraries)
	if err != nil {
		return nil, err
	}
	return &Flags{Include: cf.Include(), Library: cf.Library()}, nil
}

// NewSource creates the source for a strategy. An empty brewPrefix selects
// the strategy's standard Homebrew prefix.
func NewSource(strategy platform.Strategy, pkgConfigPath, brewPrefix string) (Source, error) {
	switch strategy {
	case platform.PkgConfig:
		return NewPkgConfigSource(pkgConfigPath), nil
	case platform.BrewIntel:
		if brewPrefix == "" {
			brewPrefix = brew.DefaultInstallPathIntel
		}
		return NewBrewSource(strategy, brewPrefix), nil
	case platform.BrewARM:
		if brewPrefix == "" {
			brewPrefix = brew.DefaultInstallPathARM
		}
		return NewBrewSource(strategy, brewPrefix), nil
	default:
		return nil, fmt.Errorf("unsupported strategy: %s", strategy)
	}
}
