package cli

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-productos/internal/application/importer"
	"github.com/jhoicas/gestion-productos/internal/domain"
)

// ask imprime label y lee la respuesta. Fin de la entrada equivale a Salir.
func (c *Console) ask(label string) (string, error) {
	c.println(label)
	line, ok := c.readLine()
	if !ok {
		return "", errExit
	}
	return line, nil
}

// askID lee un ID entero. Un valor no numérico devuelve *domain.InputError.
func (c *Console) askID(label string) (int, error) {
	line, err := c.ask(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(line)
	if err != nil {
		return 0, &domain.InputError{Field: "id", Value: line}
	}
	return id, nil
}

// askDecimal repregunta hasta obtener un número válido.
func (c *Console) askDecimal(label string) (decimal.Decimal, error) {
	for {
		line, err := c.ask(label)
		if err != nil {
			return decimal.Decimal{}, err
		}
		d, err := importer.ParseDecimal(line)
		if err == nil {
			return d, nil
		}
		c.println(msgInvalidNumber)
	}
}
