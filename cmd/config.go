package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/akeleontechnologies/taam-app/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set TAAM configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("default_page_size: %d\n", cfg.DefaultPageSize)
		fmt.Printf("workers: %d\n", cfg.Workers)
		fmt.Printf("default_owner: %s\n", cfg.DefaultOwner)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "default_page_size":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for default_page_size: %v", val)
			}
			cfg.DefaultPageSize = i
		case "workers":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for workers: %v", val)
			}
			cfg.Workers = i
		case "default_owner":
			cfg.DefaultOwner = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
