package citas

import "strings"

// Status is an appointment lifecycle state, normalized to one canonical
// lower-case form at the decode boundary. The server has historically
// mixed cases ("Confirmada" vs "confirmada"); nothing downstream compares
// raw strings.
type Status string

const (
	Pendiente  Status = "pendiente"
	Confirmada Status = "confirmada"
	Expirada   Status = "expirada"
	Cancelada  Status = "cancelada"
	Completada Status = "completada"
)

// ParseStatus normalizes a wire status. "completa" is an older spelling
// of completada still present in stored rows.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pendiente":
		return Pendiente
	case "confirmada":
		return Confirmada
	case "expirada":
		return Expirada
	case "cancelada":
		return Cancelada
	case "completa", "completada":
		return Completada
	default:
		return Status(strings.ToLower(strings.TrimSpace(s)))
	}
}

// Cancellable reports whether an appointment in this state may be
// cancelled by the user. All other transitions are server-owned.
func (s Status) Cancellable() bool {
	return s == Pendiente || s == Confirmada
}
