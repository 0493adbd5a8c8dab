package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-productos/internal/application/dto"
	"github.com/jhoicas/gestion-productos/internal/application/usecase"
	"github.com/jhoicas/gestion-productos/internal/domain"
	"github.com/jhoicas/gestion-productos/internal/domain/entity"
	"github.com/jhoicas/gestion-productos/internal/infrastructure/memory"
)

func seeded(t *testing.T) (*usecase.ProductUseCase, *memory.ProductRepo) {
	t.Helper()
	repo := memory.NewProductRepository()
	require.NoError(t, repo.CreateBatch(context.Background(), []*entity.Product{
		{ID: 5, EANCode: "779005", Description: "Azúcar 1kg", Category: "Almacén", UnitPrice: decimal.NewFromInt(900), TaxRate: decimal.NewFromInt(21)},
		{ID: 6, EANCode: "779006", Description: "ABCDEF", Category: "Varios", UnitPrice: decimal.NewFromInt(1), TaxRate: decimal.Zero},
	}))
	return usecase.NewProductUseCase(repo), repo
}

func TestUpdate_LuegoVerReflejaLosCambios(t *testing.T) {
	ctx := context.Background()
	uc, _ := seeded(t)

	in := dto.UpdateProductRequest{
		UnitPrice:   decimal.RequireFromString("1050.25"),
		Category:    "Endulzantes",
		Description: "Azúcar común 1kg",
		TaxRate:     decimal.RequireFromString("10.5"),
	}
	updated, err := uc.Update(ctx, 5, in)
	require.NoError(t, err)
	require.NotNil(t, updated)

	got, err := uc.GetByID(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, in.UnitPrice.Equal(got.UnitPrice))
	assert.Equal(t, in.Category, got.Category)
	assert.Equal(t, in.Description, got.Description)
	assert.True(t, in.TaxRate.Equal(got.TaxRate))
	assert.Equal(t, "779005", got.EANCode, "el código EAN no se toca")
}

func TestUpdate_Inexistente(t *testing.T) {
	uc, _ := seeded(t)
	got, err := uc.Update(context.Background(), 99, dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdate_Validacion(t *testing.T) {
	uc, repo := seeded(t)
	tests := map[string]dto.UpdateProductRequest{
		"precio negativo": {UnitPrice: decimal.NewFromInt(-1), TaxRate: decimal.NewFromInt(21)},
		"iva negativo":    {UnitPrice: decimal.NewFromInt(1), TaxRate: decimal.NewFromInt(-1)},
		"iva mayor a 100": {UnitPrice: decimal.NewFromInt(1), TaxRate: decimal.NewFromInt(101)},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Update(context.Background(), 5, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			p, err := repo.GetByID(context.Background(), 5)
			require.NoError(t, err)
			assert.Equal(t, "Azúcar 1kg", p.Description)
		})
	}
}

func TestSearchYList(t *testing.T) {
	ctx := context.Background()
	uc, _ := seeded(t)

	found, err := uc.Search(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "ABCDEF", found[0].Description)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
