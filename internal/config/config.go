package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// DefaultPageSize controls respondent chart pagination.
	DefaultPageSize int `mapstructure:"default_page_size" yaml:"default_page_size"`
	// Workers is the number of goroutines used to classify rows.
	Workers int `mapstructure:"workers" yaml:"workers"`
	// DefaultOwner is stamped into generated chart specs.
	DefaultOwner string `mapstructure:"default_owner" yaml:"default_owner"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.taam/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".taam")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TAAM")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("default_page_size", 20)
	v.SetDefault("workers", 4)
	v.SetDefault("default_owner", "local")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".taam")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 20
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return &c, nil
}
