package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/akeleontechnologies/taam-app/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config/viper)
	cfgFile string
	debug   bool
	// Worker override (overrides config if set)
	flagWorkers int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "taam",
	Short: "TAAM CLI: classify survey respondents into shopper personas",
	Long: `TAAM imports survey exports (CSV/TSV/XLSX), scores each respondent on the
six TAAM axes, classifies them into the ten shopper personas, and emits
renderer-agnostic chart specs for reporting frontends.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.taam/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "classification goroutines (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("workers") && flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}
}

func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// workers returns the configured classification worker count.
func workers() int {
	if cfg != nil && cfg.Workers > 0 {
		return cfg.Workers
	}
	return 4
}

// defaultOwner returns the owner stamped into generated chart specs.
func defaultOwner() string {
	if cfg != nil && cfg.DefaultOwner != "" {
		return cfg.DefaultOwner
	}
	return "local"
}

// defaultPageSize returns the respondent pagination window.
func defaultPageSize() int {
	if cfg != nil && cfg.DefaultPageSize > 0 {
		return cfg.DefaultPageSize
	}
	return 20
}
