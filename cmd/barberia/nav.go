package main

import "fmt"

// screenCommands maps every screen identifier the menus may reference to
// the command that opens it. This is the CLI's screen registry; the menu
// table is validated against it at startup.
var screenCommands = map[string]string{
	"Dashboard":       "barberia citas list",
	"Clientes":        "barberia citas list --buscar <cliente>",
	"Barberos":        "barberia barberos list",
	"Roles":           "barberia menu",
	"Ventas":          "barberia citas list",
	"Citas":           "barberia citas list",
	"Galeria":         "barberia galeria list",
	"GestionGaleria":  "barberia galeria list",
	"GaleriaBarberos": "barberia barberos list",
}

func screenRegistry() map[string]bool {
	registry := make(map[string]bool, len(screenCommands))
	for screen := range screenCommands {
		registry[screen] = true
	}
	return registry
}

// printNavigator satisfies drawer.Navigator by suggesting the command
// that opens the selected screen. Closing the drawer is a no-op here;
// each invocation is its own surface.
type printNavigator struct{}

func (printNavigator) Navigate(screen string) {
	if cmd, ok := screenCommands[screen]; ok {
		fmt.Printf("→ %s\n", cmd)
		return
	}
	fmt.Printf("→ %s\n", screen)
}

func (printNavigator) CloseDrawer() {}
