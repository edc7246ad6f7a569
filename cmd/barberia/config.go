package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nybarber/barberia/internal/localstore"
	"github.com/nybarber/barberia/internal/viewport"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change CLI settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := localstore.LoadConfig()
		if err != nil {
			return err
		}
		path, err := localstore.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Printf("config:     %s\n", path)
		fmt.Printf("server:     %s\n", valueOr(cfg.DefaultServer, "(none)"))
		fmt.Printf("viewport:   %s\n", valueOr(cfg.Viewport, "auto"))
		fmt.Printf("log_format: %s\n", valueOr(cfg.LogFormat, "text"))
		fmt.Printf("log_level:  %s\n", valueOr(cfg.LogLevel, "warn"))
		return nil
	},
}

var configViewportCmd = &cobra.Command{
	Use:   "viewport <mobile|desktop|auto>",
	Short: "Pin or restore automatic layout detection",
	Long: `Pin the layout class instead of detecting it from the terminal
width. "auto" restores detection.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := args[0]
		if value != "auto" {
			if _, ok := viewport.ParseClass(value); !ok {
				return fmt.Errorf("viewport must be mobile, desktop or auto")
			}
		} else {
			value = ""
		}

		cfg, err := localstore.LoadConfig()
		if err != nil {
			return err
		}
		cfg.Viewport = value
		if err := localstore.SaveConfig(cfg); err != nil {
			return err
		}
		fmt.Printf("viewport: %s\n", valueOr(value, "auto"))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configViewportCmd)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
