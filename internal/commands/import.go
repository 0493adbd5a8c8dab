package commands

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-productos/internal/interfaces/cli"
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [archivo]",
		Short: "Importa productos desde un archivo delimitado (por defecto IMPORT_FILE)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			path := a.cfg.Import.File
			if len(args) > 0 {
				path = args[0]
			}
			res, err := a.importer.ImportFile(cmd.Context(), path)
			if err != nil {
				return err
			}
			cli.PrintImportResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
