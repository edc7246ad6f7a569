package apiclient

import (
	"context"
	"fmt"
)

// CitasPath returns the role-dependent appointment listing path. Clients
// see only their own bookings; barbers see their chair's; everyone else
// gets the full listing.
func CitasPath(role string) string {
	switch role {
	case "Cliente":
		return "/citas/patient-dates"
	case "Barbero":
		return "/citas/by-barber?all=true"
	default:
		return "/citas?all=true"
	}
}

// ListCitas returns the appointments visible to the given role.
func (c *Client) ListCitas(ctx context.Context, role string) ([]Cita, error) {
	var envelope citasEnvelope
	if _, err := c.Get(ctx, CitasPath(role), &envelope); err != nil {
		return nil, err
	}
	return envelope.Citas, nil
}

// CancelCita cancels an appointment. The caller's IANA time zone travels
// in the body so the server can evaluate its cancellation window.
// Returns the server's acknowledgement message.
func (c *Client) CancelCita(ctx context.Context, id, zonaHoraria string) (string, error) {
	body := struct {
		ZonaHoraria string `json:"zonaHoraria"`
	}{ZonaHoraria: zonaHoraria}

	var resp mensajeResponse
	if _, err := c.Put(ctx, fmt.Sprintf("/citas/cancelar-cita/%s", id), body, &resp); err != nil {
		return "", err
	}
	return resp.Mensaje, nil
}
