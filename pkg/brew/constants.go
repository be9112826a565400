// constants.go
package brew

const (
	// DefaultInstallPathIntel is the default Homebrew install path for Intel Macs
	DefaultInstallPathIntel = "/usr/local"

	// DefaultInstallPathARM is the default Homebrew install path for ARM Macs
	DefaultInstallPathARM = "/opt/homebrew"

	// OptDir holds one stable symlink per installed formula
	OptDir = "opt"
)
