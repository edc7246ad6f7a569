package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nybarber/barberia/internal/localstore"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Manage the configured server",
}

var serverShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configured server URL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := localstore.LoadConfig()
		if err != nil {
			return err
		}
		if cfg.DefaultServer == "" {
			fmt.Println("no server configured")
			return nil
		}
		fmt.Println(cfg.DefaultServer)
		return nil
	},
}

var serverSetCmd = &cobra.Command{
	Use:   "set <server-url>",
	Short: "Set the default server URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		serverURL := strings.TrimRight(args[0], "/")
		if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
			return fmt.Errorf("server URL must start with http:// or https://")
		}

		cfg, err := localstore.LoadConfig()
		if err != nil {
			return err
		}
		cfg.DefaultServer = serverURL
		if err := localstore.SaveConfig(cfg); err != nil {
			return err
		}
		fmt.Println(serverURL)
		return nil
	},
}

func init() {
	serverCmd.AddCommand(serverShowCmd)
	serverCmd.AddCommand(serverSetCmd)
}
