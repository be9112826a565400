// internal/cli/init.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arc-language/teaconf/pkg/core"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a teaconf.yaml with the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = filepath.Join(teajsDir, core.DefaultConfigName)
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := core.SaveConfig(config, path); err != nil {
			return err
		}

		fmt.Printf("✓ Wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config")
}
