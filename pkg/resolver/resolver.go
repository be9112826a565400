// pkg/resolver/resolver.go
package resolver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/arc-language/teaconf/pkg/core"
	"github.com/arc-language/teaconf/pkg/platform"
	"github.com/arc-language/teaconf/pkg/registry"
)

// Options configures a Resolver
type Options struct {
	StagingDir    string   // where missing headers are staged
	SystemRoots   []string // where missing headers are searched
	PkgConfigPath string   // pkg-config binary, default /usr/bin/pkg-config
	BrewPrefix    string   // Homebrew prefix, default per strategy
	Logger        logrus.FieldLogger
}

// Resolver turns dependency descriptors into NAME_INCLUDE / NAME_LIBRARY params
type Resolver struct {
	source Source
	stager *Stager
	logger logrus.FieldLogger
}

// New creates a resolver using strategy for every dependency
func New(strategy platform.Strategy, opts Options) (*Resolver, error) {
	src, err := NewSource(strategy, opts.PkgConfigPath, opts.BrewPrefix)
	if err != nil {
		return nil, err
	}
	return NewWithSource(src, opts), nil
}

// NewWithSource creates a resolver around an existing source
func NewWithSource(src Source, opts Options) *Resolver {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Resolver{
		source: src,
		stager: &Stager{Roots: opts.SystemRoots, Dir: opts.StagingDir},
		logger: logger,
	}
}

// Strategy returns the name of the strategy in use
func (r *Resolver) Strategy() string {
	return r.source.Name()
}

// IncludeKey returns the include param key of a dependency
func IncludeKey(dep *registry.Dependency) string {
	return strings.ToUpper(dep.Name) + "_INCLUDE"
}

// LibraryKey returns the library param key of a dependency
func LibraryKey(dep *registry.Dependency) string {
	return strings.ToUpper(dep.Name) + "_LIBRARY"
}

// ResolveAll resolves deps one after another, in order
func (r *Resolver) ResolveAll(ctx context.Context, deps []registry.Dependency, params *core.Params) error {
	if r.stager.Dir != "" {
		if err := os.MkdirAll(r.stager.Dir, 0755); err != nil {
			return fmt.Errorf("creating staging directory: %w", err)
		}
	}

	for i := range deps {
		if err := r.Resolve(ctx, &deps[i], params); err != nil {
			return err
		}
	}
	return nil
}

// Resolve resolves one dependency and stores its flags in params, frozen.
// When the include flags come back empty the dependency's headers are staged
// from the system roots instead. An optional dependency that fails to
// resolve is skipped and leaves params untouched.
func (r *Resolver) Resolve(ctx context.Context, dep *registry.Dependency, params *core.Params) error {
	log := r.logger.WithFields(logrus.Fields{
		"dependency": dep.Name,
		"strategy":   r.source.Name(),
	})

	flags, err := r.resolve(ctx, dep, log)
	if err != nil {
		if dep.Optional {
			log.WithError(err).Warn("optional dependency not resolved, skipping")
			return nil
		}
		return fmt.Errorf("resolving %s: %w", dep.Name, err)
	}

	incKey, libKey := IncludeKey(dep), LibraryKey(dep)
	if err := params.Set(incKey, flags.Include); err != nil {
		return err
	}
	if err := params.Set(libKey, flags.Library); err != nil {
		return err
	}
	params.Freeze(incKey, libKey)

	log.WithFields(logrus.Fields{
		"include": flags.Include,
		"library": flags.Library,
	}).Debug("dependency resolved")

	return nil
}

func (r *Resolver) resolve(ctx context.Context, dep *registry.Dependency, log logrus.FieldLogger) (*Flags, error) {
	flags, err := r.source.Flags(ctx, dep)
	if err != nil {
		return nil, err
	}

	if flags.Include != "" {
		return flags, nil
	}

	log.Infof("%s INCLUDE path is empty, searching in %v", strings.ToUpper(dep.Name), r.stager.Roots)

	for _, header := range dep.Includes {
		dst, err := r.stager.StageFile(header)
		if err != nil {
			return nil, err
		}
		log.Debugf("staged %s", dst)
	}
	for _, dir := range dep.IncludeDirs {
		dst, err := r.stager.StageDir(dir)
		if err != nil {
			return nil, err
		}
		log.Debugf("staged %s", dst)
	}

	return flags, nil
}
