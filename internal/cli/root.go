// internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arc-language/teaconf/pkg/core"
)

var (
	cfgFile     string
	teajsDir    string
	v8Dir       string
	jobs        int
	installRoot string
	remote      string
	depsFile    string
	strategy    string
	overrides   map[string]string
	debug       bool

	config *core.Config
	logger = logrus.New()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "teaconf",
	Short: "TeaJS build configuration",
	Long: `teaconf - TeaJS build configuration

Resolves compiler and linker flags for TeaJS's system libraries, recovers
the objects and archives V8's d8 shell links against from V8's ninja files,
and hands everything to make through the environment.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is <teajs>/teaconf.yaml)")
	pf.StringVar(&teajsDir, "teajs", ".", "TeaJS checkout")
	pf.StringVar(&v8Dir, "v8", "", "use another v8 location")
	pf.IntVar(&jobs, "jobs", 8, "run make with -j <number>")
	pf.StringVar(&installRoot, "install-root", "", "install software to an alternate root")
	pf.StringVar(&remote, "remote", "", "remote machine for remoteinstall (scp and ssh are used)")
	pf.StringVar(&depsFile, "deps", "", "deps.toml overriding the built-in dependency list")
	pf.StringVar(&strategy, "strategy", "", "force a discovery strategy (pkg-config, brew, brew-arm)")
	pf.StringToStringVar(&overrides, "set", nil, "extra KEY=VALUE params passed to make")
	pf.BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	for _, cmd := range makeCommands() {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig(cmd *cobra.Command) error {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	path := cfgFile
	if path == "" {
		path = filepath.Join(teajsDir, core.DefaultConfigName)
	}

	var err error
	config, err = core.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with flags
	flags := cmd.Flags()
	if flags.Changed("teajs") || config.TeaJSDir == "" {
		config.TeaJSDir = teajsDir
	}
	if flags.Changed("v8") {
		config.V8Dir = v8Dir
	}
	if flags.Changed("jobs") {
		config.Jobs = jobs
	}
	if flags.Changed("install-root") {
		config.InstallRoot = installRoot
	}
	if flags.Changed("remote") {
		config.Remote = remote
	}
	if flags.Changed("deps") {
		config.DepsFile = depsFile
	}
	if config.Set == nil {
		config.Set = map[string]string{}
	}
	for k, v := range overrides {
		config.Set[k] = v
	}
	if debug {
		config.Debug = true
	}

	if config.Debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return nil
}
