package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-productos/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "0,00"},
		{in: "999", want: "999,00"},
		{in: "1234.5", want: "1.234,50"},
		{in: "1000000", want: "1.000.000,00"},
		{in: "3250.505", want: "3.250,51"},
		{in: "-25000", want: "-25.000,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMoney(decimal.RequireFromString(tt.in)), "entrada %s", tt.in)
	}
}

func TestGenerate_DevuelvePDF(t *testing.T) {
	g := NewCatalogueGenerator("Catálogo de productos")
	g.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	products := []*entity.Product{
		{ID: 1, EANCode: "7790001", Description: "Yerba Mate", Category: "Almacén", UnitPrice: decimal.RequireFromString("3250.5"), TaxRate: decimal.NewFromInt(21)},
		{ID: 2, EANCode: "7790002", Description: "Leche", Category: "Lácteos", UnitPrice: decimal.NewFromInt(1100), TaxRate: decimal.RequireFromString("10.5")},
	}

	doc, err := g.Generate(context.Background(), products)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "debe empezar con la firma PDF")
}

func TestGenerate_CatalogoVacio(t *testing.T) {
	doc, err := NewCatalogueGenerator("Catálogo").Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
