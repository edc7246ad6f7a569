package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nybarber/barberia/internal/apiclient"
	"github.com/nybarber/barberia/internal/galeria"
	"github.com/nybarber/barberia/internal/localstore"
	"github.com/nybarber/barberia/internal/media"
	"github.com/nybarber/barberia/internal/viewport"
)

var galeriaCmd = &cobra.Command{
	Use:   "galeria",
	Short: "Manage the work gallery",
}

var (
	galeriaServer string
	galeriaTipo   string
	galeriaBuscar string
	galeriaPagina int
	galeriaPublic bool
)

var galeriaListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List gallery items",
	Long: `List gallery items. With --publico, uses the unauthenticated
client-facing listing (active items only).

Examples:
  barberia galeria list
  barberia galeria list --tipo video
  barberia galeria list --publico`,
	Args: cobra.NoArgs,
	RunE: runGaleriaList,
}

var galeriaForm struct {
	titulo      string
	descripcion string
	imagen      string
	video       string
	miniatura   string
	barbero     string
	orden       int
	inactivo    bool
	sinComprim  bool
}

var galeriaCrearCmd = &cobra.Command{
	Use:   "crear",
	Short: "Add an image or video to the gallery",
	Long: `Create a gallery item from a local file. Images are resized and
recompressed client-side before upload unless --sin-comprimir is set.
Videos are sent as a direct reference.

Examples:
  barberia galeria crear --titulo "Corte degradado" --imagen ./corte.jpg
  barberia galeria crear --titulo "Fade timelapse" --video ./fade.mp4 --miniatura https://cdn.example.com/fade.jpg`,
	Args: cobra.NoArgs,
	RunE: runGaleriaCrear,
}

var galeriaEditarCmd = &cobra.Command{
	Use:   "editar <item-id>",
	Short: "Edit a gallery item",
	Long: `Update a gallery item's metadata. Without --imagen or --video the
stored media is kept.

Examples:
  barberia galeria editar 7 --titulo "Corte clásico" --orden 2`,
	Args: cobra.ExactArgs(1),
	RunE: runGaleriaEditar,
}

var galeriaDeleteYes bool

var galeriaEliminarCmd = &cobra.Command{
	Use:   "eliminar <item-id>",
	Short: "Delete a gallery item",
	Args:  cobra.ExactArgs(1),
	RunE:  runGaleriaEliminar,
}

var galeriaActivarCmd = &cobra.Command{
	Use:   "activar <item-id>",
	Short: "Toggle an item's visibility to clients",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGaleriaToggle(cmd, args[0], (*galeria.Screen).ToggleActivo)
	},
}

var galeriaDestacarCmd = &cobra.Command{
	Use:   "destacar <item-id>",
	Short: "Toggle an item's featured flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGaleriaToggle(cmd, args[0], (*galeria.Screen).ToggleDestacado)
	},
}

func init() {
	galeriaCmd.PersistentFlags().StringVarP(&galeriaServer, "server", "s", "", "Server URL (defaults to the configured server)")

	galeriaListCmd.Flags().StringVar(&galeriaTipo, "tipo", "", "Filter by type: imagen or video")
	galeriaListCmd.Flags().StringVar(&galeriaBuscar, "buscar", "", "Filter by title, description or type")
	galeriaListCmd.Flags().IntVar(&galeriaPagina, "pagina", 1, "Page to show (desktop layout)")
	galeriaListCmd.Flags().BoolVar(&galeriaPublic, "publico", false, "Use the public listing (no login required)")

	for _, c := range []*cobra.Command{galeriaCrearCmd, galeriaEditarCmd} {
		c.Flags().StringVar(&galeriaForm.titulo, "titulo", "", "Item title")
		c.Flags().StringVar(&galeriaForm.descripcion, "descripcion", "", "Item description")
		c.Flags().StringVar(&galeriaForm.imagen, "imagen", "", "Path to an image file")
		c.Flags().StringVar(&galeriaForm.video, "video", "", "Path or URL of a video")
		c.Flags().StringVar(&galeriaForm.miniatura, "miniatura", "", "Thumbnail URL (videos)")
		c.Flags().StringVar(&galeriaForm.barbero, "barbero", "", "Owning barber ID (administrators)")
		c.Flags().BoolVar(&galeriaForm.inactivo, "inactivo", false, "Create hidden from clients")
		c.Flags().BoolVar(&galeriaForm.sinComprim, "sin-comprimir", false, "Embed the image without resizing")
	}
	galeriaEditarCmd.Flags().IntVar(&galeriaForm.orden, "orden", 0, "Display order")

	galeriaEliminarCmd.Flags().BoolVar(&galeriaDeleteYes, "si", false, "Confirm without prompting")

	galeriaCmd.AddCommand(galeriaListCmd)
	galeriaCmd.AddCommand(galeriaCrearCmd)
	galeriaCmd.AddCommand(galeriaEditarCmd)
	galeriaCmd.AddCommand(galeriaEliminarCmd)
	galeriaCmd.AddCommand(galeriaActivarCmd)
	galeriaCmd.AddCommand(galeriaDestacarCmd)
}

func newGaleriaScreen(serverArg string) (*galeria.Screen, *viewport.Signal, error) {
	sess, client, err := getAuthenticatedClient(serverArg)
	if err != nil {
		return nil, nil, err
	}
	signal, err := viewportSignal()
	if err != nil {
		return nil, nil, err
	}
	return galeria.NewScreen(client, sess, signal.Current), signal, nil
}

func runGaleriaList(cmd *cobra.Command, args []string) error {
	if galeriaPublic {
		client, err := getPublicClient(galeriaServer)
		if err != nil {
			return err
		}
		items, err := client.ListGaleriaPublic(cmd.Context(), apiclient.GalleryFilter{Tipo: galeriaTipo})
		if err != nil {
			return fmt.Errorf("loading public gallery: %w", err)
		}
		renderGalleryTable(items)
		return nil
	}

	screen, signal, err := newGaleriaScreen(galeriaServer)
	if err != nil {
		return err
	}
	defer signal.Close()

	screen.SetFilter(cmd.Context(), galeriaTipo)
	if err := drainDialog(&screen.Dialog); err != nil {
		return err
	}

	screen.List.SetQuery(galeriaBuscar)
	screen.List.SetPage(galeriaPagina)

	if screen.List.Len() == 0 {
		fmt.Println("No hay elementos en la galería.")
		return nil
	}

	fmt.Printf("Galería (%d)\n", screen.List.Len())
	renderGalleryTable(screen.List.Visible())
	if signal.Current().Paginated() {
		fmt.Printf("Página %d de %d\n", screen.List.Page(), screen.List.TotalPages())
	}
	return nil
}

func renderGalleryTable(items []apiclient.GalleryItem) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTÍTULO\tTIPO\tORDEN\tACTIVO\tDESTACADA")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			item.ID, item.Titulo, item.Tipo, item.Orden,
			marcar(item.Activo), marcar(item.EsDestacada))
	}
	w.Flush()
}

func marcar(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}

// pickAttachment prepares the media named by the form flags, or nil when
// neither --imagen nor --video was given.
func pickAttachment() (*media.Attachment, error) {
	switch {
	case galeriaForm.imagen != "" && galeriaForm.video != "":
		return nil, fmt.Errorf("--imagen and --video are mutually exclusive")
	case galeriaForm.imagen != "":
		cfg, err := localstore.LoadConfig()
		if err != nil {
			return nil, err
		}
		return media.PickImage(galeriaForm.imagen, media.ImageOptions{
			Recompress: !galeriaForm.sinComprim,
			MaxWidth:   cfg.ImageMaxWidth,
			Quality:    cfg.ImageQuality,
		})
	case galeriaForm.video != "":
		return media.PickVideo(galeriaForm.video)
	default:
		return nil, nil
	}
}

func buildForm() (galeria.Form, error) {
	attachment, err := pickAttachment()
	if err != nil {
		return galeria.Form{}, err
	}
	return galeria.Form{
		Titulo:      galeriaForm.titulo,
		Descripcion: galeriaForm.descripcion,
		Attachment:  attachment,
		Miniatura:   galeriaForm.miniatura,
		Activo:      !galeriaForm.inactivo,
		BarberoID:   galeriaForm.barbero,
		Orden:       galeriaForm.orden,
	}, nil
}

func runGaleriaCrear(cmd *cobra.Command, args []string) error {
	screen, signal, err := newGaleriaScreen(galeriaServer)
	if err != nil {
		return err
	}
	defer signal.Close()

	screen.Focus(cmd.Context())
	if err := drainDialog(&screen.Dialog); err != nil {
		return err
	}

	form, err := buildForm()
	if err != nil {
		return err
	}
	if err := screen.Create(cmd.Context(), form); err != nil {
		return drainDialog(&screen.Dialog)
	}
	return drainDialog(&screen.Dialog)
}

func runGaleriaEditar(cmd *cobra.Command, args []string) error {
	screen, signal, err := newGaleriaScreen(galeriaServer)
	if err != nil {
		return err
	}
	defer signal.Close()

	screen.Focus(cmd.Context())
	if err := drainDialog(&screen.Dialog); err != nil {
		return err
	}

	item, err := findGalleryItem(screen, args[0])
	if err != nil {
		return err
	}

	form, err := buildForm()
	if err != nil {
		return err
	}
	applyItemDefaults(cmd, &form, *item)

	if err := screen.Update(cmd.Context(), *item, form); err != nil {
		return drainDialog(&screen.Dialog)
	}
	return drainDialog(&screen.Dialog)
}

// applyItemDefaults fills form fields whose flags the user did not set
// from the item being edited, so an edit only changes what was named.
func applyItemDefaults(cmd *cobra.Command, form *galeria.Form, item apiclient.GalleryItem) {
	flags := cmd.Flags()
	if !flags.Changed("titulo") {
		form.Titulo = item.Titulo
	}
	if !flags.Changed("descripcion") {
		form.Descripcion = item.Descripcion
	}
	if !flags.Changed("miniatura") {
		form.Miniatura = item.Miniatura
	}
	if !flags.Changed("orden") {
		form.Orden = item.Orden
	}
	if !flags.Changed("inactivo") {
		form.Activo = item.Activo
	}
	if !flags.Changed("barbero") {
		form.BarberoID = item.BarberoID
	}
}

func findGalleryItem(screen *galeria.Screen, id string) (*apiclient.GalleryItem, error) {
	for _, item := range screen.List.Filtered() {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, fmt.Errorf("gallery item %s not found", id)
}

func runGaleriaEliminar(cmd *cobra.Command, args []string) error {
	screen, signal, err := newGaleriaScreen(galeriaServer)
	if err != nil {
		return err
	}
	defer signal.Close()

	screen.Focus(cmd.Context())
	if err := drainDialog(&screen.Dialog); err != nil {
		return err
	}

	item, err := findGalleryItem(screen, args[0])
	if err != nil {
		return err
	}

	screen.RequestDelete(*item)
	if !galeriaDeleteYes {
		ok, err := promptConfirm(screen.DeleteModal.Title, screen.DeleteModal.Message)
		if err != nil {
			return err
		}
		if !ok {
			screen.DeleteModal.Dismiss()
			fmt.Println("Eliminación abortada.")
			return nil
		}
	}

	screen.ConfirmDelete(cmd.Context())
	if screen.DeleteModal.Visible() {
		return drainDialog(&screen.Dialog)
	}
	return drainDialog(&screen.Dialog)
}

func runGaleriaToggle(cmd *cobra.Command, id string, toggle func(*galeria.Screen, context.Context, string)) error {
	screen, signal, err := newGaleriaScreen(galeriaServer)
	if err != nil {
		return err
	}
	defer signal.Close()

	toggle(screen, cmd.Context(), id)
	if err := drainDialog(&screen.Dialog); err != nil {
		return err
	}

	item, err := findGalleryItem(screen, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s: activo=%s destacada=%s\n", item.Titulo, marcar(item.Activo), marcar(item.EsDestacada))
	return nil
}
