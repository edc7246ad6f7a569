package apiclient

import (
	"encoding/json"
	"fmt"
)

// PersonaRef is a minimal reference to a barber, client or service as
// embedded in appointment responses.
type PersonaRef struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// Cita is a scheduled booking as returned by the appointment endpoints.
type Cita struct {
	ID                     string      `json:"id"`
	Barbero                *PersonaRef `json:"barbero,omitempty"`
	Cliente                *PersonaRef `json:"cliente,omitempty"`
	Servicio               *PersonaRef `json:"servicio,omitempty"`
	Estado                 string      `json:"estado"`
	Fecha                  string      `json:"fecha,omitempty"`
	FechaFormateada        string      `json:"fechaFormateada,omitempty"`
	Hora                   string      `json:"hora,omitempty"`
	PacienteTemporalNombre string      `json:"pacienteTemporalNombre,omitempty"`
}

// citasEnvelope accepts the two shapes the appointment endpoints answer
// with: a bare array, or an object wrapping the array in a "citas" field.
// Anything else is a decode error, never a silent default.
type citasEnvelope struct {
	Citas []Cita
}

func (e *citasEnvelope) UnmarshalJSON(data []byte) error {
	var list []Cita
	if err := json.Unmarshal(data, &list); err == nil {
		e.Citas = list
		return nil
	}
	var wrapped struct {
		Citas []Cita `json:"citas"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.Citas == nil {
		return fmt.Errorf("response has neither a cita array nor a citas field")
	}
	e.Citas = wrapped.Citas
	return nil
}

// mensajeResponse is the generic mutation acknowledgement.
type mensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

// GalleryItem is a media record owned by a barber.
type GalleryItem struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion,omitempty"`
	Tipo        string `json:"tipo"`
	URL         string `json:"url"`
	Miniatura   string `json:"miniatura,omitempty"`
	Orden       int    `json:"orden"`
	Activo      bool   `json:"activo"`
	EsDestacada bool   `json:"esDestacada"`
	BarberoID   string `json:"barberoId,omitempty"`
}

// GalleryItemRequest is the create/update payload for a gallery item.
type GalleryItemRequest struct {
	Titulo      string  `json:"titulo"`
	Descripcion *string `json:"descripcion"`
	Tipo        string  `json:"tipo"`
	URL         string  `json:"url"`
	Miniatura   *string `json:"miniatura"`
	Orden       int     `json:"orden"`
	Activo      bool    `json:"activo"`
	BarberoID   string  `json:"barberoId,omitempty"`
}

// galleryListResponse wraps gallery collection responses.
type galleryListResponse struct {
	Success bool          `json:"success"`
	Data    []GalleryItem `json:"data"`
	Mensaje string        `json:"mensaje,omitempty"`
}

// galleryItemResponse wraps single-item gallery responses.
type galleryItemResponse struct {
	Success bool         `json:"success"`
	Data    *GalleryItem `json:"data"`
	Mensaje string       `json:"mensaje,omitempty"`
}

// Barbero is read-only barber reference data.
type Barbero struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Avatar   string `json:"avatar,omitempty"`
	Telefono string `json:"telefono,omitempty"`
}

// BarberoResumen is one entry of the public barber summary listing: the
// barber, the image shown on their card, and how many items they own.
type BarberoResumen struct {
	Barbero         Barbero      `json:"barbero"`
	ImagenPrincipal *GalleryItem `json:"imagenPrincipal"`
	TotalItems      int          `json:"totalItems"`
}

// BarberoGaleria is a barber together with their published gallery.
type BarberoGaleria struct {
	Barbero Barbero       `json:"barbero"`
	Galeria []GalleryItem `json:"galeria"`
}

type barberoResumenResponse struct {
	Success bool             `json:"success"`
	Data    []BarberoResumen `json:"data"`
}

type barberoGaleriaResponse struct {
	Success bool            `json:"success"`
	Data    *BarberoGaleria `json:"data"`
}

// LoginResponse is the authentication response.
type LoginResponse struct {
	Token   string `json:"token"`
	Mensaje string `json:"mensaje,omitempty"`
}
