// internal/cli/deps.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/teaconf/pkg/platform"
	"github.com/arc-language/teaconf/pkg/registry"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "List dependencies and discovery strategies",
	Long:  `List the declared third-party dependencies and the discovery strategies available on this system.`,
	Args:  cobra.NoArgs,
	RunE:  runDeps,
}

func runDeps(cmd *cobra.Command, args []string) error {
	deps, err := registry.LoadOrBuiltin(config.DepsFile)
	if err != nil {
		return err
	}

	fmt.Printf("Dependencies:\n")
	for _, dep := range deps {
		opt := ""
		if dep.Optional {
			opt = " (optional)"
		}
		fmt.Printf("  %-12s pkg-config: %s%s\n", dep.Name, dep.PkgConfigName, opt)
		if len(dep.Includes) > 0 {
			fmt.Printf("  %-12s stages: %s\n", "", strings.Join(dep.Includes, ", "))
		}
		if len(dep.IncludeDirs) > 0 {
			fmt.Printf("  %-12s stages trees: %s\n", "", strings.Join(dep.IncludeDirs, ", "))
		}
	}

	// Detect platform
	plat, err := platform.Detect()
	if err != nil {
		return fmt.Errorf("detecting platform: %w", err)
	}

	fmt.Printf("\nPlatform: %s/%s\n\n", plat.OS, plat.Arch)
	fmt.Printf("Available strategies:\n")
	for _, st := range plat.Available {
		marker := " "
		if st == plat.Preferred {
			marker = "*"
		}
		fmt.Printf("  %s %s\n", marker, st)
	}
	fmt.Printf("\n* = preferred strategy\n")

	return nil
}
