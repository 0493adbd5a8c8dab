package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-productos/internal/domain"
	"github.com/jhoicas/gestion-productos/internal/domain/entity"
	"github.com/jhoicas/gestion-productos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const schemaProductos = `
	CREATE TABLE IF NOT EXISTS productos (
		id              INTEGER PRIMARY KEY,
		codigo_ean      TEXT    NOT NULL DEFAULT '',
		descripcion     TEXT    NOT NULL DEFAULT '',
		tipo_producto   TEXT    NOT NULL DEFAULT '',
		precio_unitario NUMERIC NOT NULL DEFAULT 0,
		porcentaje_iva  NUMERIC NOT NULL DEFAULT 0
	)`

const selectProductos = `
	SELECT id, codigo_ean, descripcion, tipo_producto, precio_unitario, porcentaje_iva
	FROM productos`

const upsertProducto = `
	INSERT INTO productos (id, codigo_ean, descripcion, tipo_producto, precio_unitario, porcentaje_iva)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		codigo_ean = EXCLUDED.codigo_ean,
		descripcion = EXCLUDED.descripcion,
		tipo_producto = EXCLUDED.tipo_producto,
		precio_unitario = EXCLUDED.precio_unitario,
		porcentaje_iva = EXCLUDED.porcentaje_iva`

const insertProducto = `
	INSERT INTO productos (id, codigo_ean, descripcion, tipo_producto, precio_unitario, porcentaje_iva)
	VALUES ($1, $2, $3, $4, $5, $6)`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// EnsureSchema crea la tabla productos si no existe.
func (r *ProductRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, schemaProductos); err != nil {
		return domain.NewStoreError("ensure schema", fmt.Errorf("create table productos: %w", err))
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, selectProductos+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStoreError("get", fmt.Errorf("get product: %w", err))
	}
	return p, nil
}

// SearchByDescription busca con ILIKE; los comodines del usuario se escapan.
func (r *ProductRepo) SearchByDescription(ctx context.Context, query string) ([]*entity.Product, error) {
	list, err := r.queryList(ctx, selectProductos+` WHERE descripcion ILIKE $1 ORDER BY id`, containsPattern(query))
	if err != nil {
		return nil, domain.NewStoreError("search", fmt.Errorf("search products: %w", err))
	}
	return list, nil
}

// Upsert inserta el producto o sobrescribe todos sus campos si el ID ya existe.
func (r *ProductRepo) Upsert(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, upsertProducto, p.ID, p.EANCode, p.Description, p.Category, p.UnitPrice, p.TaxRate)
	if err != nil {
		return domain.NewStoreError("upsert", fmt.Errorf("upsert product %d: %w", p.ID, err))
	}
	return nil
}

// CreateBatch inserta todos los productos en una sola transacción usando pgx.Batch.
func (r *ProductRepo) CreateBatch(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	err := runInTx(ctx, r.q, func(tx pgx.Tx) error {
		b := &pgx.Batch{}
		for _, p := range products {
			b.Queue(insertProducto, p.ID, p.EANCode, p.Description, p.Category, p.UnitPrice, p.TaxRate)
		}
		br := tx.SendBatch(ctx, b)
		for _, p := range products {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				if isUniqueViolation(err) {
					return fmt.Errorf("producto %d: %w", p.ID, domain.ErrDuplicate)
				}
				return fmt.Errorf("insert product %d: %w", p.ID, err)
			}
		}
		return br.Close()
	})
	return domain.NewStoreError("create batch", err)
}

// List devuelve todos los productos ordenados por ID.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	list, err := r.queryList(ctx, selectProductos+` ORDER BY id`)
	if err != nil {
		return nil, domain.NewStoreError("list", fmt.Errorf("list products: %w", err))
	}
	return list, nil
}

func (r *ProductRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.EANCode, &p.Description, &p.Category, &p.UnitPrice, &p.TaxRate); err != nil {
		return nil, err
	}
	return &p, nil
}
