package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-productos/internal/application/dto"
	"github.com/jhoicas/gestion-productos/internal/domain"
	"github.com/jhoicas/gestion-productos/internal/domain/entity"
	"github.com/jhoicas/gestion-productos/internal/domain/repository"
)

// ProductUseCase consultas y actualización de productos sobre el repositorio.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Search devuelve los productos cuya descripción contiene query (sin distinguir mayúsculas).
func (uc *ProductUseCase) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	return uc.repo.SearchByDescription(ctx, query)
}

// GetByID obtiene un producto por ID; nil, nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

// Update sobrescribe precio, tipo, descripción e IVA. Devuelve nil, nil si el ID no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int, in dto.UpdateProductRequest) (*entity.Product, error) {
	if err := ValidateUpdate(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.UnitPrice = in.UnitPrice
	product.Category = in.Category
	product.Description = in.Description
	product.TaxRate = in.TaxRate
	if err := uc.repo.Upsert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.List(ctx)
}

// ValidateUpdate exige precio no negativo e IVA entre 0 y 100.
func ValidateUpdate(in dto.UpdateProductRequest) error {
	if !entity.ValidUnitPrice(in.UnitPrice) {
		return fmt.Errorf("precio %s negativo: %w", in.UnitPrice, domain.ErrInvalidInput)
	}
	if !entity.ValidTaxRate(in.TaxRate) {
		return fmt.Errorf("IVA %s fuera de rango 0-100: %w", in.TaxRate, domain.ErrInvalidInput)
	}
	return nil
}
