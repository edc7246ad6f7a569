package main

import (
	"fmt"

	"github.com/nybarber/barberia/internal/modal"
)

// drainDialog surfaces a pending info dialog on the terminal. Error
// dialogs become command errors; anything else is printed and dismissed.
func drainDialog(dialog *modal.Info) error {
	if !dialog.Visible() {
		return nil
	}
	if dialog.Title == "Error" {
		msg := dialog.Message
		dialog.Dismiss()
		return fmt.Errorf("%s", msg)
	}
	fmt.Println(dialog.Message)
	dialog.Dismiss()
	return nil
}
