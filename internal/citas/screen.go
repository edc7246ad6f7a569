// Package citas implements the appointment list screen: role-dependent
// listing, search, pagination, and the confirmation-gated cancel flow.
package citas

import (
	"context"
	"fmt"
	"time"

	"github.com/nybarber/barberia/internal/apiclient"
	"github.com/nybarber/barberia/internal/listview"
	"github.com/nybarber/barberia/internal/modal"
	"github.com/nybarber/barberia/internal/session"
	"github.com/nybarber/barberia/internal/viewport"
)

// API is the slice of the client this screen consumes.
type API interface {
	ListCitas(ctx context.Context, role string) ([]apiclient.Cita, error)
	CancelCita(ctx context.Context, id, zonaHoraria string) (string, error)
}

// Screen is the appointment list's view state.
type Screen struct {
	api  API
	role string

	List        *listview.Controller[apiclient.Cita]
	CancelModal modal.Confirm[apiclient.Cita]
	Dialog      modal.Info

	timeZone func() string
}

// NewScreen builds the screen for a session. class supplies the live
// viewport class; timeZone supplies the caller's IANA zone identifier
// (nil means the local zone).
func NewScreen(api API, sess *session.Session, class func() viewport.Class, timeZone func() string) *Screen {
	if timeZone == nil {
		timeZone = localZone
	}
	s := &Screen{api: api, role: sess.Role, timeZone: timeZone}
	s.List = listview.New(
		func(ctx context.Context) ([]apiclient.Cita, error) {
			return api.ListCitas(ctx, s.role)
		},
		searchFields,
		class,
	)
	return s
}

// searchFields are the display fields the list search matches:
// barber name, client name, service name and status.
func searchFields(c apiclient.Cita) []string {
	fields := make([]string, 0, 4)
	if c.Barbero != nil {
		fields = append(fields, c.Barbero.Nombre)
	}
	if c.Cliente != nil {
		fields = append(fields, c.Cliente.Nombre)
	}
	if c.Servicio != nil {
		fields = append(fields, c.Servicio.Nombre)
	}
	return append(fields, string(ParseStatus(c.Estado)))
}

func localZone() string {
	if name := time.Now().Location().String(); name != "Local" {
		return name
	}
	zone, _ := time.Now().Zone()
	return zone
}

// Focus loads the collection. Called on mount and on every regain of
// focus; failures surface through the info dialog and leave any
// previously rendered list untouched.
func (s *Screen) Focus(ctx context.Context) {
	if err := s.List.Refresh(ctx); err != nil {
		s.Dialog.Show("Error", "No se pudieron cargar las citas")
	}
}

// CanCancel reports whether the cancel action is enabled for a cita.
func (s *Screen) CanCancel(c apiclient.Cita) bool {
	return ParseStatus(c.Estado).Cancellable()
}

// RequestCancel opens the confirmation dialog for a cita. Returns false
// without opening anything when the cita's state is not cancellable; the
// action is unreachable for those items.
func (s *Screen) RequestCancel(c apiclient.Cita) bool {
	if !s.CanCancel(c) {
		return false
	}
	s.CancelModal.Open(c, "Cancelar Cita", cancelPrompt(c))
	return true
}

func cancelPrompt(c apiclient.Cita) string {
	who := "este cliente"
	if c.Cliente != nil && c.Cliente.Nombre != "" {
		who = c.Cliente.Nombre
	} else if c.PacienteTemporalNombre != "" {
		who = c.PacienteTemporalNombre
	}
	return fmt.Sprintf("¿Estás seguro de que quieres cancelar la cita de %s programada para el %s a las %s?",
		who, c.FechaFormateada, c.Hora)
}

// ConfirmCancel performs the cancellation pending in the confirmation
// dialog. On success the dialog closes, the pending selection clears, the
// collection reloads, and the server's message shows. On failure the
// dialog stays open with its target intact so the user can retry, and the
// error surfaces through the info dialog.
func (s *Screen) ConfirmCancel(ctx context.Context) {
	target := s.CancelModal.Target()
	if target == nil {
		return
	}

	mensaje, err := s.api.CancelCita(ctx, target.ID, s.timeZone())
	if err != nil {
		msg := apiclient.ServerMessage(err)
		if msg == "" {
			msg = "Error al cancelar la cita"
		}
		s.Dialog.Show("Error", msg)
		s.CancelModal.KeepOpen()
		return
	}

	s.CancelModal.Dismiss()
	if mensaje == "" {
		mensaje = "Cita cancelada correctamente"
	}
	// The cancellation succeeded even when the reload did not; the
	// success message always shows, annotated with the load failure.
	if refreshErr := s.List.Refresh(ctx); refreshErr != nil {
		s.Dialog.Show("Éxito", mensaje+" (no se pudieron recargar las citas)")
		return
	}
	s.Dialog.Show("Éxito", mensaje)
}

// DismissCancel closes the confirmation dialog without acting.
func (s *Screen) DismissCancel() {
	s.CancelModal.Dismiss()
}
