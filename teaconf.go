// teaconf.go
package teaconf

import (
	"context"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/arc-language/teaconf/pkg/core"
	"github.com/arc-language/teaconf/pkg/ninja"
	"github.com/arc-language/teaconf/pkg/platform"
	"github.com/arc-language/teaconf/pkg/registry"
	"github.com/arc-language/teaconf/pkg/resolver"
)

// Re-export types for convenience
type (
	Config     = core.Config
	Params     = core.Params
	Strategy   = platform.Strategy
	Dependency = registry.Dependency
	LinkTarget = ninja.LinkTarget
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Options configures a Configure run
type Options struct {
	Config *Config

	// Strategy forces a discovery strategy; empty detects one with Probes
	Strategy Strategy
	Probes   []platform.Probe

	PkgConfigPath string
	BrewPrefix    string

	Logger  logrus.FieldLogger
	Console io.Writer // receives the truncated params summary; may be nil
}

// Result is the outcome of a successful run
type Result struct {
	Params   *Params
	Strategy Strategy
	Target   *LinkTarget
}

// Configure runs every preparatory step for a TeaJS build: base params,
// dependency flags, V8 link inputs, and the log, object list and env script
// files. Any error aborts the run.
func Configure(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	params, err := core.Bootstrap(cfg)
	if err != nil {
		return nil, &Error{Op: "bootstrap", Err: err}
	}

	// make runs in the checkout, so relative outputs land there too
	cfg = anchored(cfg, params.Value(core.KeyCDir))

	strategy := opts.Strategy
	if strategy == "" {
		probes := opts.Probes
		if probes == nil {
			probes = platform.DefaultProbes
		}
		plat, err := platform.DetectWith(probes)
		if err != nil {
			return nil, &Error{Op: "detect", Err: err}
		}
		strategy = plat.Preferred
		logger.Debugf("platform: %s", plat)
	}

	deps, err := registry.LoadOrBuiltin(cfg.DepsFile)
	if err != nil {
		return nil, &Error{Op: "load dependencies", Err: err}
	}

	res, err := resolver.New(strategy, resolver.Options{
		StagingDir:    cfg.StagingDir,
		SystemRoots:   cfg.SystemRoots,
		PkgConfigPath: opts.PkgConfigPath,
		BrewPrefix:    opts.BrewPrefix,
		Logger:        logger,
	})
	if err != nil {
		return nil, &Error{Op: "resolve", Err: err}
	}
	logger.Infof("resolving %d dependencies with %s", len(deps), res.Strategy())
	if err := res.ResolveAll(ctx, deps, params); err != nil {
		return nil, &Error{Op: "resolve", Err: err}
	}

	scraper := ninja.NewScraper(cfg.Target)
	scraper.Logger = logger
	descriptor := ninja.DescriptorPath(params.Value(core.KeyV8CompileDir), cfg.Target)
	logger.Infof("scraping %s", descriptor)
	target, err := scraper.ScrapeFile(descriptor, params)
	if err != nil {
		return nil, &Error{Op: "scrape", Dep: cfg.Target, Err: err}
	}

	if err := persist(cfg, params, scraper, opts.Console); err != nil {
		return nil, &Error{Op: "persist", Err: err}
	}

	return &Result{
		Params:   params,
		Strategy: strategy,
		Target:   target,
	}, nil
}

func persist(cfg *Config, params *Params, scraper *ninja.Scraper, console io.Writer) error {
	if cfg.LogFile != "" {
		if err := params.WriteLog(cfg.LogFile, console); err != nil {
			return err
		}
	}
	if cfg.ObjectsFile != "" {
		if err := params.WriteValue(scraper.Key(ninja.SuffixObjects), cfg.ObjectsFile); err != nil {
			return err
		}
	}
	if cfg.EnvFile != "" {
		if err := params.WriteEnvScript(cfg.EnvFile); err != nil {
			return err
		}
	}
	return nil
}

// anchored returns a copy of cfg with relative output paths joined to dir
func anchored(cfg *Config, dir string) *Config {
	c := *cfg
	for _, p := range []*string{&c.StagingDir, &c.LogFile, &c.ObjectsFile, &c.EnvFile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return &c
}
