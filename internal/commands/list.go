package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-productos/internal/interfaces/cli"
)

func newListCommand() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista los productos; con --search filtra por descripción",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if query != "" {
				found, err := a.products.Search(cmd.Context(), query)
				if err != nil {
					return err
				}
				cli.PrintProducts(cmd.OutOrStdout(), found)
				return nil
			}
			all, err := a.products.List(cmd.Context())
			if err != nil {
				return err
			}
			cli.PrintProducts(cmd.OutOrStdout(), all)
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d\n", len(all))
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "search", "", "texto a buscar en la descripción")

	return cmd
}
