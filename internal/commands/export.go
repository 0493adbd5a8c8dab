package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-productos/internal/infrastructure/pdf"
)

func newExportPDFCommand() *cobra.Command {
	var out string
	var title string

	cmd := &cobra.Command{
		Use:   "export-pdf",
		Short: "Genera el catálogo completo en PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			all, err := a.products.List(cmd.Context())
			if err != nil {
				return err
			}
			doc, err := pdf.NewCatalogueGenerator(title).Generate(cmd.Context(), all)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, doc, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			a.log.Info().Str("out", out).Int("products", len(all)).Msg("catálogo exportado")
			fmt.Fprintf(cmd.OutOrStdout(), "Catálogo generado en %s (%d productos)\n", out, len(all))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "catalogo.pdf", "ruta del PDF de salida")
	cmd.Flags().StringVar(&title, "title", "Catálogo de productos", "título del documento")

	return cmd
}
