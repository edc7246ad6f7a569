package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nybarber/barberia/internal/drawer"
)

var menuColapsado bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the navigation menu for your role",
	Long: `Render the role-aware navigation drawer: top-level items, the
collapsible sections your role sees, and your profile.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&menuColapsado, "colapsado", false, "Render sections collapsed")
}

func runMenu(cmd *cobra.Command, args []string) error {
	sess, err := getSession("")
	if err != nil {
		return err
	}

	d := drawer.New(sess, printNavigator{}, drawer.Options{StartCollapsed: menuColapsado})
	cfg := d.Config()

	fmt.Println("New York Barber")
	fmt.Println("Menu")
	for _, item := range cfg.TopItems {
		fmt.Printf("  %s  (%s)\n", item.Label, screenCommands[item.Screen])
	}
	for _, section := range cfg.Sections {
		mark := "▾"
		if !d.Expanded(section.Name) {
			mark = "▸"
		}
		fmt.Printf("  %s %s\n", mark, section.Name)
		if !d.Expanded(section.Name) {
			continue
		}
		for _, item := range section.Entries {
			fmt.Printf("    %s  (%s)\n", item.Label, screenCommands[item.Screen])
		}
	}

	fmt.Println("Perfil")
	fmt.Printf("  %s\n", d.DisplayName())
	fmt.Printf("  %s\n", d.DisplayEmail())
	fmt.Printf("  %s\n", d.Role())
	return nil
}
