package citas

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nybarber/barberia/internal/apiclient"
	"github.com/nybarber/barberia/internal/session"
	"github.com/nybarber/barberia/internal/viewport"
)

type fakeAPI struct {
	citas   []apiclient.Cita
	listErr error
	// listErrOn fails only the Nth list call (1-based); zero disables it.
	listErrOn int

	cancelMensaje string
	cancelErr     error
	cancelled     []string
	zones         []string
	listCalls     int
}

func (f *fakeAPI) ListCitas(ctx context.Context, role string) ([]apiclient.Cita, error) {
	f.listCalls++
	if f.listErrOn != 0 && f.listCalls == f.listErrOn {
		return nil, errors.New("down")
	}
	return f.citas, f.listErr
}

func (f *fakeAPI) CancelCita(ctx context.Context, id, zonaHoraria string) (string, error) {
	f.cancelled = append(f.cancelled, id)
	f.zones = append(f.zones, zonaHoraria)
	return f.cancelMensaje, f.cancelErr
}

func desktop() viewport.Class { return viewport.Desktop }

func sampleCita(id, estado string) apiclient.Cita {
	return apiclient.Cita{
		ID:              id,
		Estado:          estado,
		Barbero:         &apiclient.PersonaRef{Nombre: "Luis"},
		Cliente:         &apiclient.PersonaRef{Nombre: "Marta"},
		Servicio:        &apiclient.PersonaRef{Nombre: "Corte"},
		FechaFormateada: "15 de marzo",
		Hora:            "10:30",
	}
}

func newTestScreen(api *fakeAPI) *Screen {
	sess := &session.Session{Role: session.RoleCliente}
	return NewScreen(api, sess, desktop, func() string { return "America/New_York" })
}

func TestFocusLoadsList(t *testing.T) {
	api := &fakeAPI{citas: []apiclient.Cita{sampleCita("1", "pendiente")}}
	s := newTestScreen(api)
	s.Focus(context.Background())
	if s.Dialog.Visible() {
		t.Fatalf("unexpected dialog: %s", s.Dialog.Message)
	}
	if s.List.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.List.Len())
	}
}

func TestFocusErrorShowsDialog(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("down")}
	s := newTestScreen(api)
	s.Focus(context.Background())
	if !s.Dialog.Visible() {
		t.Fatal("no dialog after failed load")
	}
	if s.Dialog.Message != "No se pudieron cargar las citas" {
		t.Errorf("dialog = %q", s.Dialog.Message)
	}
}

func TestSearchMatchesNormalizedStatus(t *testing.T) {
	api := &fakeAPI{citas: []apiclient.Cita{
		sampleCita("1", "Confirmada"),
		sampleCita("2", "pendiente"),
	}}
	s := newTestScreen(api)
	s.Focus(context.Background())

	s.List.SetQuery("confirmada")
	got := s.List.Filtered()
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("Filtered = %v, want cita 1", got)
	}
}

func TestRequestCancelRejectsFinalStates(t *testing.T) {
	s := newTestScreen(&fakeAPI{})
	for _, estado := range []string{"expirada", "cancelada", "completada", "completa"} {
		if s.RequestCancel(sampleCita("1", estado)) {
			t.Errorf("RequestCancel allowed for %q", estado)
		}
		if s.CancelModal.Visible() {
			t.Fatalf("modal open for %q", estado)
		}
	}
}

func TestRequestCancelOpensModalWithPrompt(t *testing.T) {
	s := newTestScreen(&fakeAPI{})
	c := sampleCita("1", "Pendiente")

	if !s.RequestCancel(c) {
		t.Fatal("RequestCancel refused a pendiente cita")
	}
	if !s.CancelModal.Visible() {
		t.Fatal("modal not open")
	}
	msg := s.CancelModal.Message
	for _, want := range []string{"Marta", "15 de marzo", "10:30"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt %q missing %q", msg, want)
		}
	}
}

func TestCancelPromptFallsBackToTemporaryName(t *testing.T) {
	c := sampleCita("1", "pendiente")
	c.Cliente = nil
	c.PacienteTemporalNombre = "Pedro"
	if got := cancelPrompt(c); !strings.Contains(got, "Pedro") {
		t.Errorf("prompt %q missing temporary name", got)
	}

	c.PacienteTemporalNombre = ""
	if got := cancelPrompt(c); !strings.Contains(got, "este cliente") {
		t.Errorf("prompt %q missing generic fallback", got)
	}
}

func TestConfirmCancelSuccess(t *testing.T) {
	api := &fakeAPI{
		citas:         []apiclient.Cita{sampleCita("1", "pendiente")},
		cancelMensaje: "Cita cancelada correctamente",
	}
	s := newTestScreen(api)
	s.Focus(context.Background())
	s.RequestCancel(api.citas[0])

	s.ConfirmCancel(context.Background())

	if s.CancelModal.Visible() {
		t.Error("modal still open after success")
	}
	if s.CancelModal.Target() != nil {
		t.Error("pending target not cleared")
	}
	if len(api.cancelled) != 1 || api.cancelled[0] != "1" {
		t.Errorf("cancelled = %v, want [1]", api.cancelled)
	}
	if api.zones[0] != "America/New_York" {
		t.Errorf("zone = %q", api.zones[0])
	}
	if api.listCalls != 2 {
		t.Errorf("listCalls = %d, want reload after cancel", api.listCalls)
	}
	if s.Dialog.Title != "Éxito" || s.Dialog.Message != "Cita cancelada correctamente" {
		t.Errorf("dialog = %q / %q", s.Dialog.Title, s.Dialog.Message)
	}
}

func TestConfirmCancelSuccessDefaultMessage(t *testing.T) {
	api := &fakeAPI{citas: []apiclient.Cita{sampleCita("1", "confirmada")}}
	s := newTestScreen(api)
	s.Focus(context.Background())
	s.RequestCancel(api.citas[0])

	s.ConfirmCancel(context.Background())

	if s.Dialog.Message != "Cita cancelada correctamente" {
		t.Errorf("dialog = %q", s.Dialog.Message)
	}
}

func TestConfirmCancelSuccessSurvivesFailedReload(t *testing.T) {
	api := &fakeAPI{
		citas:         []apiclient.Cita{sampleCita("1", "pendiente")},
		cancelMensaje: "Cita cancelada correctamente",
		listErrOn:     2, // the reload after the cancel
	}
	s := newTestScreen(api)
	s.Focus(context.Background())
	s.RequestCancel(api.citas[0])

	s.ConfirmCancel(context.Background())

	if s.CancelModal.Visible() {
		t.Error("modal still open after a successful cancel")
	}
	if s.Dialog.Title != "Éxito" {
		t.Errorf("dialog title = %q, want the success dialog", s.Dialog.Title)
	}
	if !strings.Contains(s.Dialog.Message, "Cita cancelada correctamente") {
		t.Errorf("dialog %q lost the server's message", s.Dialog.Message)
	}
	if !strings.Contains(s.Dialog.Message, "no se pudieron recargar") {
		t.Errorf("dialog %q does not mention the failed reload", s.Dialog.Message)
	}
}

func TestConfirmCancelFailureKeepsModalOpen(t *testing.T) {
	api := &fakeAPI{
		citas:     []apiclient.Cita{sampleCita("1", "pendiente")},
		cancelErr: errors.New("network down"),
	}
	s := newTestScreen(api)
	s.Focus(context.Background())
	s.RequestCancel(api.citas[0])

	s.ConfirmCancel(context.Background())

	if !s.CancelModal.Visible() {
		t.Error("modal closed after failure")
	}
	if s.CancelModal.Target() == nil {
		t.Error("target lost after failure")
	}
	if s.Dialog.Title != "Error" || s.Dialog.Message != "Error al cancelar la cita" {
		t.Errorf("dialog = %q / %q", s.Dialog.Title, s.Dialog.Message)
	}
	if api.listCalls != 1 {
		t.Errorf("listCalls = %d, failure must not reload", api.listCalls)
	}
}

func TestConfirmCancelFailureShowsServerMessage(t *testing.T) {
	api := &fakeAPI{
		citas:     []apiclient.Cita{sampleCita("1", "pendiente")},
		cancelErr: &apiclient.APIError{StatusCode: 409, Mensaje: "La cita ya fue atendida"},
	}
	s := newTestScreen(api)
	s.Focus(context.Background())
	s.RequestCancel(api.citas[0])

	s.ConfirmCancel(context.Background())

	if s.Dialog.Message != "La cita ya fue atendida" {
		t.Errorf("dialog = %q", s.Dialog.Message)
	}
}

func TestConfirmCancelWithoutPendingTarget(t *testing.T) {
	api := &fakeAPI{}
	s := newTestScreen(api)
	s.ConfirmCancel(context.Background())
	if len(api.cancelled) != 0 {
		t.Errorf("cancel issued with no pending target: %v", api.cancelled)
	}
}

func TestDismissCancel(t *testing.T) {
	api := &fakeAPI{}
	s := newTestScreen(api)
	s.RequestCancel(sampleCita("1", "pendiente"))
	s.DismissCancel()
	if s.CancelModal.Visible() || s.CancelModal.Target() != nil {
		t.Error("dismiss left modal state behind")
	}
	if len(api.cancelled) != 0 {
		t.Errorf("dismiss issued a cancel: %v", api.cancelled)
	}
}
