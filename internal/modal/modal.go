// Package modal holds the view state for the confirmation and info
// dialogs that gate destructive actions and report outcomes.
package modal

// Confirm is a yes/no dialog holding the pending target of a destructive
// action. The action itself runs at the call site once the user confirms.
type Confirm[T any] struct {
	visible bool
	target  *T
	Title   string
	Message string
}

// Open shows the dialog for a target.
func (c *Confirm[T]) Open(target T, title, message string) {
	c.target = &target
	c.Title = title
	c.Message = message
	c.visible = true
}

// Visible reports whether the dialog is showing.
func (c *Confirm[T]) Visible() bool { return c.visible }

// Target returns the pending target, or nil when nothing is pending.
func (c *Confirm[T]) Target() *T { return c.target }

// Dismiss closes the dialog and clears the pending target.
func (c *Confirm[T]) Dismiss() {
	c.visible = false
	c.target = nil
}

// KeepOpen leaves the dialog showing with its target intact. Used after a
// failed action so the user can retry without re-selecting.
func (c *Confirm[T]) KeepOpen() {}

// Info is a blocking message dialog.
type Info struct {
	visible bool
	Title   string
	Message string
}

// Show displays a message.
func (i *Info) Show(title, message string) {
	i.Title = title
	i.Message = message
	i.visible = true
}

// Visible reports whether the dialog is showing.
func (i *Info) Visible() bool { return i.visible }

// Dismiss closes the dialog.
func (i *Info) Dismiss() {
	i.visible = false
	i.Title = ""
	i.Message = ""
}
