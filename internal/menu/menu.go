// Package menu holds the static role → navigation menu table consumed by
// the drawer. The table never mutates at runtime.
package menu

import "fmt"

// Entry is one navigable menu item.
type Entry struct {
	Label  string
	Screen string
	Icon   string
}

// Section is a named, collapsible group of entries.
type Section struct {
	Name    string
	Entries []Entry
}

// Config is the navigational structure for one role: top-level entries
// followed by ordered collapsible sections.
type Config struct {
	TopItems []Entry
	Sections []Section
}

// SectionNames returns the section names in display order.
func (c Config) SectionNames() []string {
	names := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		names[i] = s.Name
	}
	return names
}

// DefaultRole is the configuration served for unknown or missing roles.
// Deliberate: an unrecognized role sees the administrator layout rather
// than an empty drawer, matching established product behavior.
const DefaultRole = "Administrador"

var roleMenus = map[string]Config{
	"Administrador": {
		TopItems: []Entry{
			{Label: "Dashboard", Screen: "Dashboard", Icon: "view-dashboard-outline"},
		},
		Sections: []Section{
			{Name: "Usuarios", Entries: []Entry{
				{Label: "Clientes", Screen: "Clientes", Icon: "user"},
				{Label: "Barberos", Screen: "Barberos", Icon: "cut-outline"},
				{Label: "Roles", Screen: "Roles", Icon: "key-outline"},
			}},
			{Name: "Ventas", Entries: []Entry{
				{Label: "Ventas", Screen: "Ventas", Icon: "cash-outline"},
			}},
			{Name: "Agenda", Entries: []Entry{
				{Label: "Citas", Screen: "Citas", Icon: "calendar-outline"},
			}},
			{Name: "Contenido", Entries: []Entry{
				{Label: "Galería", Screen: "Galeria", Icon: "images-outline"},
				{Label: "Gestión de Galería", Screen: "GestionGaleria", Icon: "settings-outline"},
			}},
		},
	},
	"Barbero": {
		TopItems: []Entry{
			{Label: "Dashboard", Screen: "Dashboard", Icon: "view-dashboard-outline"},
		},
		Sections: []Section{
			{Name: "Agenda", Entries: []Entry{
				{Label: "Citas", Screen: "Citas", Icon: "calendar-outline"},
			}},
			{Name: "Contenido", Entries: []Entry{
				{Label: "Galería", Screen: "Galeria", Icon: "images-outline"},
				{Label: "Gestión de Galería", Screen: "GestionGaleria", Icon: "settings-outline"},
			}},
		},
	},
	"Cliente": {
		TopItems: []Entry{
			{Label: "Citas", Screen: "Citas", Icon: "calendar-outline"},
			{Label: "Galería", Screen: "GaleriaBarberos", Icon: "images-outline"},
		},
	},
}

// Resolve returns the menu configuration for a role. Unknown roles get
// the DefaultRole configuration; Resolve never returns an empty menu.
func Resolve(role string) Config {
	if cfg, ok := roleMenus[role]; ok {
		return cfg
	}
	return roleMenus[DefaultRole]
}

// Roles returns the roles with an explicit menu configuration.
func Roles() []string {
	return []string{"Administrador", "Barbero", "Cliente"}
}

// Validate checks that every screen referenced by any role's menu exists
// in the navigator's screen registry. Called once at startup so a broken
// table fails fast instead of producing dead menu items.
func Validate(registry map[string]bool) error {
	check := func(role string, e Entry) error {
		if !registry[e.Screen] {
			return fmt.Errorf("menu for role %q references unregistered screen %q", role, e.Screen)
		}
		return nil
	}
	for role, cfg := range roleMenus {
		for _, e := range cfg.TopItems {
			if err := check(role, e); err != nil {
				return err
			}
		}
		for _, s := range cfg.Sections {
			for _, e := range s.Entries {
				if err := check(role, e); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
