package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nybarber/barberia/internal/apiclient"
)

var barberosCmd = &cobra.Command{
	Use:   "barberos",
	Short: "Browse barbers and their public galleries",
}

var (
	barberosServer string
	barberosTipo   string
)

var barberosListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List barbers with their gallery summary",
	Long: `List every barber's summary card: featured image and published
item count. No login required.`,
	Args: cobra.NoArgs,
	RunE: runBarberosList,
}

var barberosGaleriaCmd = &cobra.Command{
	Use:   "galeria <barbero-id>",
	Short: "Show one barber's public gallery",
	Long: `Show a barber's published work.

Examples:
  barberia barberos galeria 3
  barberia barberos galeria 3 --tipo video`,
	Args: cobra.ExactArgs(1),
	RunE: runBarberosGaleria,
}

func init() {
	barberosCmd.PersistentFlags().StringVarP(&barberosServer, "server", "s", "", "Server URL (defaults to the configured server)")
	barberosGaleriaCmd.Flags().StringVar(&barberosTipo, "tipo", "", "Filter by type: imagen or video")

	barberosCmd.AddCommand(barberosListCmd)
	barberosCmd.AddCommand(barberosGaleriaCmd)
}

func runBarberosList(cmd *cobra.Command, args []string) error {
	client, err := getPublicClient(barberosServer)
	if err != nil {
		return err
	}

	resumen, err := client.ListBarberosResumen(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading barbers: %w", err)
	}

	if len(resumen) == 0 {
		fmt.Println("Aún no hay trabajos en la galería.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBARBERO\tTELÉFONO\tTRABAJOS\tDESTACADA")
	for _, r := range resumen {
		destacada := "-"
		if r.ImagenPrincipal != nil {
			destacada = r.ImagenPrincipal.Titulo
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			r.Barbero.ID, r.Barbero.Nombre, r.Barbero.Telefono, r.TotalItems, destacada)
	}
	w.Flush()
	return nil
}

func runBarberosGaleria(cmd *cobra.Command, args []string) error {
	client, err := getPublicClient(barberosServer)
	if err != nil {
		return err
	}

	bg, err := client.GetBarberoGaleria(cmd.Context(), args[0], apiclient.GalleryFilter{Tipo: barberosTipo})
	if err != nil {
		return fmt.Errorf("loading barber gallery: %w", err)
	}
	if bg == nil {
		return fmt.Errorf("barber %s not found", args[0])
	}

	fmt.Printf("%s", bg.Barbero.Nombre)
	if bg.Barbero.Telefono != "" {
		fmt.Printf("  (%s)", bg.Barbero.Telefono)
	}
	fmt.Println()

	if len(bg.Galeria) == 0 {
		fmt.Println("Este barbero aún no tiene trabajos publicados.")
		return nil
	}
	renderGalleryTable(bg.Galeria)
	return nil
}
