package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nybarber/barberia/internal/localstore"
	"github.com/nybarber/barberia/internal/logger"
	"github.com/nybarber/barberia/internal/menu"
)

// Version is set via ldflags at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "barberia",
	Short: "Barberia - New York Barber management from the terminal",
	Long:  `Barberia is a client for the New York Barber management API: appointments, the work gallery, and barber profiles.`,
	Example: `  # Log in and check the agenda
  barberia login https://vianney-server.onrender.com
  barberia citas list

  # Publish a photo of today's work
  barberia galeria crear --titulo "Corte degradado" --imagen ./corte.jpg

  # Browse barbers without logging in
  barberia barberos list`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := localstore.LoadConfig()
		if err != nil {
			return err
		}
		logger.Init(cfg.LogFormat, cfg.LogLevel)
		if err := menu.Validate(screenRegistry()); err != nil {
			return fmt.Errorf("menu configuration: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "agenda", Title: "Agenda Commands:"},
		&cobra.Group{ID: "galeria", Title: "Gallery Commands:"},
		&cobra.Group{ID: "cuenta", Title: "Account Commands:"},
	)

	citasCmd.GroupID = "agenda"

	galeriaCmd.GroupID = "galeria"
	barberosCmd.GroupID = "galeria"

	loginCmd.GroupID = "cuenta"
	logoutCmd.GroupID = "cuenta"
	serverCmd.GroupID = "cuenta"
	menuCmd.GroupID = "cuenta"

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(citasCmd)
	rootCmd.AddCommand(galeriaCmd)
	rootCmd.AddCommand(barberosCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
