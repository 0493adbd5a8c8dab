package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El ID lo asigna el archivo de origen
// (no lo genera la base de datos) y es la clave de reconciliación en cada importación.
type Product struct {
	ID          int
	EANCode     string          // código de barras EAN
	Description string
	Category    string          // tipo de producto
	UnitPrice   decimal.Decimal // precio unitario
	TaxRate     decimal.Decimal // porcentaje de IVA: 21 = 21 %
}

// MaxTaxRate es el porcentaje de IVA más alto aceptado.
var MaxTaxRate = decimal.NewFromInt(100)

// ValidUnitPrice informa si el precio es aceptable (no negativo).
func ValidUnitPrice(d decimal.Decimal) bool {
	return !d.IsNegative()
}

// ValidTaxRate informa si el porcentaje de IVA está entre 0 y MaxTaxRate.
func ValidTaxRate(d decimal.Decimal) bool {
	return !d.IsNegative() && !d.GreaterThan(MaxTaxRate)
}

// Overwrite copia los campos de datos de src sobre p, conservando el ID.
func (p *Product) Overwrite(src *Product) {
	p.EANCode = src.EANCode
	p.Description = src.Description
	p.Category = src.Category
	p.UnitPrice = src.UnitPrice
	p.TaxRate = src.TaxRate
}

// Clone devuelve una copia independiente del producto.
func (p *Product) Clone() *Product {
	c := *p
	return &c
}

func (p *Product) String() string {
	return fmt.Sprintf("ID: %d, Código EAN: %s, Descripción: %s, Tipo de Producto: %s, Precio: %s, IVA: %s",
		p.ID, p.EANCode, p.Description, p.Category, p.UnitPrice.String(), p.TaxRate.String())
}
