package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/jhoicas/gestion-productos/internal/domain"
)

// MenuItem una opción numerada del menú.
type MenuItem struct {
	Label  string
	Action func(ctx context.Context) error
}

// Menu lista de opciones; la opción N es Items[N-1].
type Menu struct {
	Title string
	Items []MenuItem
}

// Render imprime el menú y el prompt de selección.
func (m *Menu) Render(w io.Writer) {
	fmt.Fprintf(w, "\n        ***  %s  ***\n", m.Title)
	for i, item := range m.Items {
		fmt.Fprintf(w, "%d - %s\n", i+1, item.Label)
	}
	fmt.Fprint(w, "\n Seleccione una opción: ")
}

// Select interpreta la entrada como número de opción.
func (m *Menu) Select(input string) (*MenuItem, error) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(m.Items) {
		return nil, &domain.InputError{Field: "opción", Value: input}
	}
	return &m.Items[n-1], nil
}

func buildMainMenu(c *Console) *Menu {
	return &Menu{
		Title: "MENÚ PRINCIPAL",
		Items: []MenuItem{
			{Label: "Importar productos desde un archivo CSV", Action: c.importProducts},
			{Label: "Buscar productos por descripción", Action: c.searchProducts},
			{Label: "Visualizar detalles de un producto", Action: c.viewProduct},
			{Label: "Actualizar un producto", Action: c.updateProduct},
			{Label: "Mostrar todos los productos", Action: c.listProducts},
			{Label: "Salir del programa", Action: func(context.Context) error { return errExit }},
		},
	}
}
