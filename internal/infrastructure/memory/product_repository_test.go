package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-productos/internal/domain"
	"github.com/jhoicas/gestion-productos/internal/domain/entity"
	"github.com/jhoicas/gestion-productos/internal/infrastructure/memory"
)

func product(id int, desc string) *entity.Product {
	return &entity.Product{
		ID:          id,
		EANCode:     "7790000000000",
		Description: desc,
		Category:    "Almacén",
		UnitPrice:   decimal.RequireFromString("100.50"),
		TaxRate:     decimal.NewFromInt(21),
	}
}

func TestSearchByDescription_IgnoraMayusculas(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository()
	require.NoError(t, repo.CreateBatch(ctx, []*entity.Product{
		product(1, "ABCDEF"),
		product(2, "Yerba mate"),
		product(3, "xxabcxx"),
	}))

	got, err := repo.SearchByDescription(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	got, err = repo.SearchByDescription(ctx, "MATE")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Yerba mate", got[0].Description)

	got, err = repo.SearchByDescription(ctx, "no existe")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetByID_Ausente(t *testing.T) {
	repo := memory.NewProductRepository()
	p, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestUpsert_InsertaYActualiza(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository()

	require.NoError(t, repo.Upsert(ctx, product(5, "Arroz")))
	updated := product(5, "Arroz largo fino")
	updated.UnitPrice = decimal.NewFromInt(250)
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Arroz largo fino", got.Description)
	assert.True(t, decimal.NewFromInt(250).Equal(got.UnitPrice))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateBatch_TodoONada(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Upsert(ctx, product(2, "Existente")))

	err := repo.CreateBatch(ctx, []*entity.Product{product(1, "Nuevo"), product(2, "Duplicado")})
	require.Error(t, err)
	var storeErr *domain.StoreError
	assert.ErrorAs(t, err, &storeErr)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	p, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, p, "ningún producto del lote debe persistirse")
}

func TestList_OrdenadoPorID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository()
	for _, id := range []int{30, 10, 20} {
		require.NoError(t, repo.Upsert(ctx, product(id, "p")))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{10, 20, 30}, []int{all[0].ID, all[1].ID, all[2].ID})
}

func TestDevuelveCopias(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository()
	p := product(1, "Original")
	require.NoError(t, repo.Upsert(ctx, p))
	p.Description = "mutado fuera del repo"

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	got.Description = "mutado después de leer"

	again, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Description)
}
