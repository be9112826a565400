// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is looked up in the TeaJS checkout when no config path is given
const DefaultConfigName = "teaconf.yaml"

// Config holds teaconf configuration
type Config struct {
	TeaJSDir    string            `yaml:"teajs_dir"`
	V8Dir       string            `yaml:"v8_dir"`
	Jobs        int               `yaml:"jobs"`
	InstallRoot string            `yaml:"install_root"`
	Remote      string            `yaml:"remote"`
	StagingDir  string            `yaml:"staging_dir"`
	SystemRoots []string          `yaml:"system_roots"`
	DepsFile    string            `yaml:"deps_file"`
	Target      string            `yaml:"target"`
	LogFile     string            `yaml:"log_file"`
	ObjectsFile string            `yaml:"objects_file"`
	EnvFile     string            `yaml:"env_file"`
	Debug       bool              `yaml:"debug"`
	Set         map[string]string `yaml:"set"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		TeaJSDir:    ".",
		V8Dir:       "", // derived from the TeaJS checkout
		Jobs:        8,
		InstallRoot: "/",
		StagingDir:  "3rd-party",
		SystemRoots: []string{"/usr/include/"},
		Target:      "./d8",
		LogFile:     "build-tea.log",
		ObjectsFile: "d8_objects.txt",
		EnvFile:     "build-tea.env",
		Set:         make(map[string]string),
	}
}

// LoadConfig loads configuration from file.
// Fields missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigName
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Set == nil {
		cfg.Set = make(map[string]string)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigName
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
