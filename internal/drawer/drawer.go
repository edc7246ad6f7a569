// Package drawer manages the navigation drawer's view state: which
// sections are expanded and where item selection navigates. It performs
// no network calls.
package drawer

import (
	"github.com/nybarber/barberia/internal/menu"
	"github.com/nybarber/barberia/internal/session"
)

// Navigator is the navigation collaborator. CloseDrawer is optional in
// spirit; implementations that cannot close anything may no-op.
type Navigator interface {
	Navigate(screen string)
	CloseDrawer()
}

// Options tune the drawer's initial state.
type Options struct {
	// StartCollapsed seeds every section collapsed instead of expanded.
	StartCollapsed bool
}

// Drawer is the view state for one mounted drawer.
type Drawer struct {
	config   menu.Config
	expanded map[string]bool
	profile  session.Profile
	role     string
	nav      Navigator
}

// New resolves the menu for the session's role and seeds the per-section
// expansion state from the configuration's section names.
func New(sess *session.Session, nav Navigator, opts Options) *Drawer {
	cfg := menu.Resolve(sess.Role)
	expanded := make(map[string]bool, len(cfg.Sections))
	for _, name := range cfg.SectionNames() {
		expanded[name] = !opts.StartCollapsed
	}
	return &Drawer{
		config:   cfg,
		expanded: expanded,
		profile:  sess.Profile,
		role:     sess.Role,
		nav:      nav,
	}
}

// Config returns the resolved menu configuration.
func (d *Drawer) Config() menu.Config { return d.config }

// Expanded reports whether a section is expanded. Unknown sections are
// collapsed.
func (d *Drawer) Expanded(name string) bool { return d.expanded[name] }

// ToggleSection flips one section's state, leaving the others untouched.
// Toggling a name the menu has no section for is a no-op.
func (d *Drawer) ToggleSection(name string) {
	if _, ok := d.expanded[name]; !ok {
		return
	}
	d.expanded[name] = !d.expanded[name]
}

// SelectItem dispatches navigation to the entry's screen and requests the
// drawer to close.
func (d *Drawer) SelectItem(e menu.Entry) {
	d.nav.Navigate(e.Screen)
	d.nav.CloseDrawer()
}

// DisplayName returns the profile name with a fallback for absent data.
func (d *Drawer) DisplayName() string {
	if d.profile.Nombre != "" {
		return d.profile.Nombre
	}
	return "Usuario"
}

// DisplayEmail returns the profile email with a fallback for absent data.
func (d *Drawer) DisplayEmail() string {
	if d.profile.Email != "" {
		return d.profile.Email
	}
	return "Sin correo"
}

// Role returns the session role the drawer was built for.
func (d *Drawer) Role() string { return d.role }
