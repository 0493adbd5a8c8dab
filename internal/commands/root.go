package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-productos/internal/buildinfo"
	"github.com/jhoicas/gestion-productos/internal/interfaces/cli"
)

// NewRootCommand crea el comando raíz; sin subcomando abre el menú interactivo.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "productos",
		Short:   "Gestión de productos: importación desde CSV, búsqueda y actualización",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			console := cli.NewConsole(cli.Config{
				Products:    a.products,
				Importer:    a.importer,
				DefaultFile: a.cfg.Import.File,
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
				Log:         a.log,
			})
			return console.Run(cmd.Context())
		},
	}

	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newExportPDFCommand())

	return rootCmd
}
