// pkg/platform/detect.go
package platform

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/arc-language/teaconf/pkg/brew"
)

// ErrNoPackageManager indicates neither pkg-config nor Homebrew was found
var ErrNoPackageManager = errors.New("no pkg-config and no brew found")

// Strategy is how dependency flags are discovered on this host
type Strategy string

const (
	// PkgConfig queries pkg-config
	PkgConfig Strategy = "pkg-config"
	// BrewIntel reads the Homebrew layout under /usr/local
	BrewIntel Strategy = "brew"
	// BrewARM reads the Homebrew layout under /opt/homebrew
	BrewARM Strategy = "brew-arm"
)

// Strategies lists every strategy in detection order
var Strategies = []Strategy{PkgConfig, BrewIntel, BrewARM}

// Probe is a file whose presence makes a strategy available
type Probe struct {
	Strategy Strategy
	Path     string
}

// DefaultProbes are checked in order; the first hit is preferred
var DefaultProbes = []Probe{
	{PkgConfig, "/usr/bin/pkg-config"},
	{BrewIntel, brew.DefaultInstallPathIntel + "/bin/brew"},
	{BrewARM, brew.DefaultInstallPathARM + "/bin/brew"},
}

// Platform represents the detected system platform
type Platform struct {
	OS        string     // linux, darwin
	Arch      string     // amd64, arm64
	Available []Strategy // strategies whose probe exists
	Preferred Strategy   // strategy used for the run
}

// Detect detects the current platform with DefaultProbes
func Detect() (*Platform, error) {
	return DetectWith(DefaultProbes)
}

// DetectWith detects the platform, checking probes in order
func DetectWith(probes []Probe) (*Platform, error) {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []Strategy{},
	}

	for _, probe := range probes {
		if fileExists(probe.Path) && !contains(p.Available, probe.Strategy) {
			p.Available = append(p.Available, probe.Strategy)
		}
	}

	if len(p.Available) == 0 {
		return nil, ErrNoPackageManager
	}
	p.Preferred = p.Available[0]

	return p, nil
}

// ParseStrategy parses a strategy name as given on the command line
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range Strategies {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q (want one of %v)", s, Strategies)
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (available: %v, preferred: %s)",
		p.OS, p.Arch, p.Available, p.Preferred)
}
