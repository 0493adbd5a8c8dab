package dto

import "github.com/shopspring/decimal"

// UpdateProductRequest entrada para actualizar un producto. Todos los campos se
// sobrescriben; no hay actualización parcial. El código EAN no se modifica.
type UpdateProductRequest struct {
	UnitPrice   decimal.Decimal
	Category    string
	Description string
	TaxRate     decimal.Decimal
}
