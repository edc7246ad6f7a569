// Package galeria implements the gallery management screen: listing with
// type filters, create/edit forms with media attachments, deletion behind
// a confirmation dialog, and the per-flag toggles.
package galeria

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nybarber/barberia/internal/apiclient"
	"github.com/nybarber/barberia/internal/listview"
	"github.com/nybarber/barberia/internal/media"
	"github.com/nybarber/barberia/internal/modal"
	"github.com/nybarber/barberia/internal/session"
	"github.com/nybarber/barberia/internal/viewport"
)

// API is the slice of the client this screen consumes.
type API interface {
	ListGaleria(ctx context.Context, filter apiclient.GalleryFilter) ([]apiclient.GalleryItem, error)
	CreateGaleria(ctx context.Context, req apiclient.GalleryItemRequest) (*apiclient.GalleryItem, error)
	UpdateGaleria(ctx context.Context, id string, req apiclient.GalleryItemRequest) (*apiclient.GalleryItem, error)
	DeleteGaleria(ctx context.Context, id string) error
	ToggleActivo(ctx context.Context, id string) error
	ToggleDestacado(ctx context.Context, id string) error
}

// ValidationError is a local form failure caught before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Form carries the create/edit input.
type Form struct {
	Titulo      string
	Descripcion string
	Attachment  *media.Attachment
	Miniatura   string
	Activo      bool
	// BarberoID is the owning barber. Administrators pick one; barbers
	// are pinned to their own identity before validation runs.
	BarberoID string
	// Orden is honored on update. On create it is ignored and computed
	// as the current collection size (append to end).
	Orden int
}

// Screen is the gallery management view state.
type Screen struct {
	api  API
	sess *session.Session

	List        *listview.Controller[apiclient.GalleryItem]
	DeleteModal modal.Confirm[string]
	Dialog      modal.Info

	filter apiclient.GalleryFilter
}

// NewScreen builds the management screen for a session.
func NewScreen(api API, sess *session.Session, class func() viewport.Class) *Screen {
	s := &Screen{api: api, sess: sess}
	s.List = listview.New(
		func(ctx context.Context) ([]apiclient.GalleryItem, error) {
			return api.ListGaleria(ctx, s.filter)
		},
		func(item apiclient.GalleryItem) []string {
			return []string{item.Titulo, item.Descripcion, item.Tipo}
		},
		class,
	)
	return s
}

// SetFilter narrows the listing by media type ("" for all) and reloads.
func (s *Screen) SetFilter(ctx context.Context, tipo string) {
	s.filter = apiclient.GalleryFilter{Tipo: tipo}
	s.Focus(ctx)
}

// Focus loads the collection; failures surface through the info dialog.
func (s *Screen) Focus(ctx context.Context) {
	if err := s.List.Refresh(ctx); err != nil {
		s.Dialog.Show("Error", "No se pudo cargar la galería")
	}
}

// validate applies the local form rules. forCreate additionally requires
// a selected file.
func (s *Screen) validate(f *Form, forCreate bool) error {
	if strings.TrimSpace(f.Titulo) == "" {
		return &ValidationError{Field: "titulo", Message: "El título es obligatorio"}
	}
	if forCreate && f.Attachment == nil {
		return &ValidationError{Field: "archivo", Message: "Selecciona una imagen o video"}
	}
	if !s.sess.CanChooseBarber() {
		// Barbers only ever publish to their own gallery.
		f.BarberoID = s.sess.BarberoID
	}
	if f.BarberoID == "" && s.sess.CanChooseBarber() {
		return &ValidationError{Field: "barbero", Message: "Selecciona un barbero"}
	}
	return nil
}

func (s *Screen) request(f *Form) apiclient.GalleryItemRequest {
	req := apiclient.GalleryItemRequest{
		Titulo:    strings.TrimSpace(f.Titulo),
		Activo:    f.Activo,
		Orden:     f.Orden,
		BarberoID: f.BarberoID,
	}
	if desc := strings.TrimSpace(f.Descripcion); desc != "" {
		req.Descripcion = &desc
	}
	if f.Attachment != nil {
		req.Tipo = string(f.Attachment.Kind)
		req.URL = f.Attachment.URL
	}
	if mini := strings.TrimSpace(f.Miniatura); mini != "" {
		req.Miniatura = &mini
	}
	return req
}

// Create validates and submits a new item. Local failures short-circuit
// with an inline message and never reach the network.
func (s *Screen) Create(ctx context.Context, f Form) error {
	if err := s.validate(&f, true); err != nil {
		s.Dialog.Show("Error", err.Error())
		return err
	}

	req := s.request(&f)
	req.Orden = s.List.ItemCount() // append to end, ignoring any active filter

	if _, err := s.api.CreateGaleria(ctx, req); err != nil {
		s.showAPIError(err, "Error al guardar el elemento")
		return err
	}
	s.Dialog.Show("Éxito", "Elemento agregado exitosamente")
	s.Focus(ctx)
	return nil
}

// Update validates and submits changes to an existing item. The
// attachment is optional: without one the stored media is kept and only
// the metadata fields travel.
func (s *Screen) Update(ctx context.Context, item apiclient.GalleryItem, f Form) error {
	if err := s.validate(&f, false); err != nil {
		s.Dialog.Show("Error", err.Error())
		return err
	}

	req := s.request(&f)
	if f.Attachment == nil {
		req.Tipo = item.Tipo
		req.URL = item.URL
	}

	if _, err := s.api.UpdateGaleria(ctx, item.ID, req); err != nil {
		s.showAPIError(err, "Error al guardar el elemento")
		return err
	}
	s.Dialog.Show("Éxito", "Elemento actualizado exitosamente")
	s.Focus(ctx)
	return nil
}

// RequestDelete opens the confirmation dialog for an item.
func (s *Screen) RequestDelete(item apiclient.GalleryItem) {
	s.DeleteModal.Open(item.ID, "Eliminar elemento",
		fmt.Sprintf("¿Eliminar %q de la galería? Esta acción no se puede deshacer.", item.Titulo))
}

// ConfirmDelete performs the deletion pending in the confirmation dialog.
func (s *Screen) ConfirmDelete(ctx context.Context) {
	id := s.DeleteModal.Target()
	if id == nil {
		return
	}
	if err := s.api.DeleteGaleria(ctx, *id); err != nil {
		s.showAPIError(err, "Error al eliminar el elemento")
		return
	}
	s.DeleteModal.Dismiss()
	s.Dialog.Show("Éxito", "Elemento eliminado exitosamente")
	s.Focus(ctx)
}

// ToggleActivo flips one item's visibility flag and reloads. The list is
// briefly stale between the toggle and the follow-up fetch; toggles are
// human-paced so that window is acceptable.
func (s *Screen) ToggleActivo(ctx context.Context, id string) {
	if err := s.api.ToggleActivo(ctx, id); err != nil {
		s.showAPIError(err, "Error al cambiar el estado")
		return
	}
	s.Focus(ctx)
}

// ToggleDestacado flips one item's featured flag and reloads.
func (s *Screen) ToggleDestacado(ctx context.Context, id string) {
	if err := s.api.ToggleDestacado(ctx, id); err != nil {
		s.showAPIError(err, "Error al cambiar el destacado")
		return
	}
	s.Focus(ctx)
}

// showAPIError maps an API failure to the dialog: the oversized-payload
// case gets its own message, otherwise the server's message is preferred
// over the generic fallback.
func (s *Screen) showAPIError(err error, fallback string) {
	switch {
	case apiclient.IsPayloadTooLarge(err):
		s.Dialog.Show("Error", "La imagen es demasiado grande; reduce su tamaño e inténtalo de nuevo")
	default:
		msg := apiclient.ServerMessage(err)
		if msg == "" {
			msg = fallback
		}
		s.Dialog.Show("Error", msg)
	}
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
