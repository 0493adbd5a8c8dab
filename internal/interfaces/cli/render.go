package cli

import (
	"fmt"
	"io"

	"github.com/jhoicas/gestion-productos/internal/application/importer"
	"github.com/jhoicas/gestion-productos/internal/domain/entity"
)

// PrintProducts imprime un producto por línea.
func PrintProducts(w io.Writer, products []*entity.Product) {
	for _, p := range products {
		fmt.Fprintln(w, p.String())
	}
}

// PrintImportResult imprime las filas omitidas y los totales de la importación.
func PrintImportResult(w io.Writer, res *importer.Result) {
	for _, skipped := range res.Skipped {
		if skipped.Raw != "" {
			fmt.Fprintf(w, " ---> Error (%s) en la línea %d: %s\n", skipped.Reason, skipped.Line, skipped.Raw)
			continue
		}
		fmt.Fprintf(w, " ---> Error (%s) en la línea %d\n", skipped.Reason, skipped.Line)
	}
	fmt.Fprintf(w, "*** PRODUCTOS IMPORTADOS EXITOSAMENTE: %d nuevo(s) producto(s) importado(s). ***\n", res.New)
	fmt.Fprintf(w, "*** PRODUCTOS ACTUALIZADOS EXITOSAMENTE: %d producto(s) actualizado(s). ***\n", res.Updated)
	if len(res.Skipped) > 0 {
		fmt.Fprintf(w, "*** FILAS OMITIDAS: %d ***\n", len(res.Skipped))
	}
}
