package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nybarber/barberia/internal/apiclient"
	"github.com/nybarber/barberia/internal/citas"
	"github.com/nybarber/barberia/internal/viewport"
)

var citasCmd = &cobra.Command{
	Use:   "citas",
	Short: "Manage appointments",
}

var (
	citasServer string
	citasBuscar string
	citasPagina int
)

var citasListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the appointments visible to your role",
	Long: `List appointments. Clients see their own bookings, barbers their
chair's, administrators everything.

Examples:
  barberia citas list
  barberia citas list --buscar degradado
  barberia citas list --pagina 2`,
	Args: cobra.NoArgs,
	RunE: runCitasList,
}

var citasCancelYes bool

var citasCancelCmd = &cobra.Command{
	Use:   "cancelar <cita-id>",
	Short: "Cancel a pending or confirmed appointment",
	Long: `Cancel an appointment. Only pending and confirmed appointments can
be cancelled; the server applies its cancellation window using your
local time zone.

Examples:
  barberia citas cancelar 42
  barberia citas cancelar 42 --si   # skip the confirmation prompt`,
	Args: cobra.ExactArgs(1),
	RunE: runCitasCancel,
}

func init() {
	citasCmd.PersistentFlags().StringVarP(&citasServer, "server", "s", "", "Server URL (defaults to the configured server)")
	citasListCmd.Flags().StringVar(&citasBuscar, "buscar", "", "Filter by barber, client, service or status")
	citasListCmd.Flags().IntVar(&citasPagina, "pagina", 1, "Page to show (desktop layout)")
	citasCancelCmd.Flags().BoolVar(&citasCancelYes, "si", false, "Confirm without prompting")

	citasCmd.AddCommand(citasListCmd)
	citasCmd.AddCommand(citasCancelCmd)
}

func newCitasScreen(serverArg string) (*citas.Screen, *viewport.Signal, error) {
	sess, client, err := getAuthenticatedClient(serverArg)
	if err != nil {
		return nil, nil, err
	}
	signal, err := viewportSignal()
	if err != nil {
		return nil, nil, err
	}
	return citas.NewScreen(client, sess, signal.Current, nil), signal, nil
}

func runCitasList(cmd *cobra.Command, args []string) error {
	screen, signal, err := newCitasScreen(citasServer)
	if err != nil {
		return err
	}
	defer signal.Close()

	screen.Focus(cmd.Context())
	if err := drainDialog(&screen.Dialog); err != nil {
		return err
	}

	screen.List.SetQuery(citasBuscar)
	screen.List.SetPage(citasPagina)

	if screen.List.Len() == 0 {
		fmt.Println("No hay citas.")
		return nil
	}

	fmt.Printf("Citas (%d)\n", screen.List.Len())
	if signal.Current() == viewport.Mobile {
		renderCitaCards(screen.List.Visible())
		return nil
	}

	renderCitaTable(screen.List.Visible())
	fmt.Printf("Página %d de %d\n", screen.List.Page(), screen.List.TotalPages())
	return nil
}

func renderCitaTable(list []apiclient.Cita) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBARBERO\tESTADO\tSERVICIO\tFECHA\tHORA")
	for _, c := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID,
			refNombre(c.Barbero),
			citas.ParseStatus(c.Estado),
			refNombre(c.Servicio),
			c.FechaFormateada,
			c.Hora,
		)
	}
	w.Flush()
}

func renderCitaCards(list []apiclient.Cita) {
	for _, c := range list {
		fmt.Printf("── %s [%s]\n", refNombre(c.Barbero), citas.ParseStatus(c.Estado))
		fmt.Printf("   Servicio: %s\n", refNombre(c.Servicio))
		fmt.Printf("   Fecha:    %s\n", c.FechaFormateada)
		fmt.Printf("   Hora:     %s\n", c.Hora)
		fmt.Printf("   ID:       %s\n", c.ID)
	}
}

func refNombre(ref *apiclient.PersonaRef) string {
	if ref == nil {
		return "-"
	}
	return ref.Nombre
}

func runCitasCancel(cmd *cobra.Command, args []string) error {
	screen, signal, err := newCitasScreen(citasServer)
	if err != nil {
		return err
	}
	defer signal.Close()

	screen.Focus(cmd.Context())
	if err := drainDialog(&screen.Dialog); err != nil {
		return err
	}

	var target *apiclient.Cita
	for _, c := range screen.List.Filtered() {
		if c.ID == args[0] {
			target = &c
			break
		}
	}
	if target == nil {
		return fmt.Errorf("cita %s not found", args[0])
	}

	if !screen.RequestCancel(*target) {
		return fmt.Errorf("cita %s is %s; only pending or confirmed appointments can be cancelled",
			target.ID, citas.ParseStatus(target.Estado))
	}

	if !citasCancelYes {
		ok, err := promptConfirm(screen.CancelModal.Title, screen.CancelModal.Message)
		if err != nil {
			return err
		}
		if !ok {
			screen.DismissCancel()
			fmt.Println("Cancelación abortada.")
			return nil
		}
	}

	screen.ConfirmCancel(cmd.Context())
	if screen.CancelModal.Visible() {
		// The cancel failed; the dialog carries the server's message.
		return fmt.Errorf("%s", screen.Dialog.Message)
	}

	fmt.Println(screen.Dialog.Message)
	return nil
}

// promptConfirm asks a yes/no question on the terminal.
func promptConfirm(title, message string) (bool, error) {
	fmt.Printf("%s\n%s [s/N]: ", title, message)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "s" || answer == "si" || answer == "sí" || answer == "y", nil
}
