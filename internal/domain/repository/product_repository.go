package repository

import (
	"context"

	"github.com/jhoicas/gestion-productos/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Toda falla del backend se devuelve como *domain.StoreError.
type ProductRepository interface {
	// EnsureSchema crea la estructura subyacente si no existe. Es idempotente.
	EnsureSchema(ctx context.Context) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int) (*entity.Product, error)
	// SearchByDescription busca por contenido en la descripción sin distinguir mayúsculas.
	SearchByDescription(ctx context.Context, query string) ([]*entity.Product, error)
	Upsert(ctx context.Context, product *entity.Product) error
	// CreateBatch inserta todos los productos o ninguno.
	CreateBatch(ctx context.Context, products []*entity.Product) error
	// List devuelve todos los productos ordenados por ID.
	List(ctx context.Context) ([]*entity.Product, error)
}
