// Package memory implementa ProductRepository en memoria: un mapa por ID más
// un índice ordenado. Lo usan los tests y STORE_DRIVER=memory.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/jhoicas/gestion-productos/internal/domain"
	"github.com/jhoicas/gestion-productos/internal/domain/entity"
	"github.com/jhoicas/gestion-productos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo guarda copias de los productos; nunca expone los punteros internos.
type ProductRepo struct {
	mu    sync.RWMutex
	byID  map[int]*entity.Product
	order []int // IDs ordenados
}

// NewProductRepository construye un repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{byID: make(map[int]*entity.Product)}
}

// EnsureSchema no hace nada: la estructura existe desde la construcción.
func (r *ProductRepo) EnsureSchema(_ context.Context) error { return nil }

func (r *ProductRepo) GetByID(_ context.Context, id int) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

func (r *ProductRepo) SearchByDescription(_ context.Context, query string) ([]*entity.Product, error) {
	fold := cases.Fold()
	needle := fold.String(query)

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Product
	for _, id := range r.order {
		p := r.byID[id]
		if strings.Contains(fold.String(p.Description), needle) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (r *ProductRepo) Upsert(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(product)
	return nil
}

// CreateBatch valida duplicados antes de insertar para que sea todo o nada.
func (r *ProductRepo) CreateBatch(_ context.Context, products []*entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if _, ok := r.byID[p.ID]; ok {
			return domain.NewStoreError("create batch", fmt.Errorf("producto %d: %w", p.ID, domain.ErrDuplicate))
		}
		if _, ok := seen[p.ID]; ok {
			return domain.NewStoreError("create batch", fmt.Errorf("producto %d: %w", p.ID, domain.ErrDuplicate))
		}
		seen[p.ID] = struct{}{}
	}
	for _, p := range products {
		r.put(p)
	}
	return nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

// put requiere r.mu tomado en escritura.
func (r *ProductRepo) put(p *entity.Product) {
	if _, ok := r.byID[p.ID]; !ok {
		i := sort.SearchInts(r.order, p.ID)
		r.order = append(r.order, 0)
		copy(r.order[i+1:], r.order[i:])
		r.order[i] = p.ID
	}
	r.byID[p.ID] = p.Clone()
}
