// internal/cli/build.go
package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/arc-language/teaconf"
	"github.com/arc-language/teaconf/pkg/core"
	"github.com/arc-language/teaconf/pkg/platform"
)

// makeCommands returns one command per make goal. Each configures first,
// then runs make with the params in its environment.
func makeCommands() []*cobra.Command {
	goals := []struct {
		use, goal, short string
	}{
		{"build", "", "Configure and build TeaJS"},
		{"install", "install", "Configure and install TeaJS (usually needs sudo)"},
		{"remoteinstall", "remoteinstall", "Configure and install TeaJS on --remote over ssh"},
		{"clean", "clean", "Configure and clean the TeaJS tree"},
	}

	cmds := make([]*cobra.Command, 0, len(goals))
	for _, g := range goals {
		goal := g.goal
		cmds = append(cmds, &cobra.Command{
			Use:   g.use,
			Short: g.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMakeGoal(cmd.Context(), goal)
			},
		})
	}
	return cmds
}

func runMakeGoal(ctx context.Context, goal string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if goal == "remoteinstall" && config.Remote == "" {
		return fmt.Errorf("remoteinstall needs --remote")
	}

	result, err := configure(ctx)
	if err != nil {
		return err
	}

	color.Green.Printf("✓ Configured with %s\n", result.Strategy)

	if err := runMake(ctx, result.Params, goal); err != nil {
		return fmt.Errorf("make %s: %w", goal, err)
	}
	return nil
}

// configure runs teaconf.Configure with the loaded config and global flags
func configure(ctx context.Context) (*teaconf.Result, error) {
	opts := teaconf.Options{
		Config:  config,
		Logger:  logger,
		Console: os.Stdout,
	}

	if strategy != "" {
		st, err := platform.ParseStrategy(strategy)
		if err != nil {
			return nil, err
		}
		opts.Strategy = st
	}

	return teaconf.Configure(ctx, opts)
}

func runMake(ctx context.Context, params *core.Params, goal string) error {
	args := []string{"-j", params.Value(core.KeyJobs)}
	if goal != "" {
		args = append(args, goal)
	}

	logger.Debugf("running make %v", args)

	cmd := exec.CommandContext(ctx, "make", args...)
	cmd.Dir = params.Value(core.KeyCDir)
	cmd.Env = params.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
