package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/gestion-productos/internal/domain"
	"github.com/jhoicas/gestion-productos/internal/domain/entity"
	"github.com/jhoicas/gestion-productos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const collProductos = "productos"

// productDoc es la forma del producto en la colección; el ID del archivo es el _id.
type productDoc struct {
	ID          int                  `bson:"_id"`
	EANCode     string               `bson:"codigo_ean"`
	Description string               `bson:"descripcion"`
	Category    string               `bson:"tipo_producto"`
	UnitPrice   primitive.Decimal128 `bson:"precio_unitario"`
	TaxRate     primitive.Decimal128 `bson:"porcentaje_iva"`
}

// ProductRepo implementa ProductRepository sobre una colección MongoDB.
type ProductRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewProductRepository conecta a MongoDB y verifica la conexión con un ping.
func NewProductRepository(ctx context.Context, uri, dbName string) (*ProductRepo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &ProductRepo{
		client: client,
		coll:   client.Database(dbName).Collection(collProductos),
	}, nil
}

// EnsureSchema crea el índice por descripción; crear un índice existente no falla.
func (r *ProductRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "descripcion", Value: 1}},
	})
	if err != nil {
		return domain.NewStoreError("ensure schema", fmt.Errorf("create index: %w", err))
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	var doc productDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewStoreError("get", fmt.Errorf("find product %d: %w", id, err))
	}
	p, err := fromDoc(doc)
	if err != nil {
		return nil, domain.NewStoreError("get", err)
	}
	return p, nil
}

// SearchByDescription usa $regex con el texto escapado y la opción "i".
func (r *ProductRepo) SearchByDescription(ctx context.Context, query string) ([]*entity.Product, error) {
	filter := bson.M{"descripcion": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}}
	list, err := r.find(ctx, filter)
	if err != nil {
		return nil, domain.NewStoreError("search", err)
	}
	return list, nil
}

func (r *ProductRepo) Upsert(ctx context.Context, product *entity.Product) error {
	doc, err := toDoc(product)
	if err != nil {
		return domain.NewStoreError("upsert", err)
	}
	_, err = r.coll.ReplaceOne(ctx, bson.M{"_id": product.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return domain.NewStoreError("upsert", fmt.Errorf("replace product %d: %w", product.ID, err))
	}
	return nil
}

// CreateBatch verifica que ningún ID exista antes del InsertMany, así un duplicado
// no deja el lote a medias (no se requiere replica set para transacciones).
func (r *ProductRepo) CreateBatch(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]int, 0, len(products))
	docs := make([]any, 0, len(products))
	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			return domain.NewStoreError("create batch", fmt.Errorf("producto %d: %w", p.ID, domain.ErrDuplicate))
		}
		seen[p.ID] = struct{}{}
		doc, err := toDoc(p)
		if err != nil {
			return domain.NewStoreError("create batch", err)
		}
		ids = append(ids, p.ID)
		docs = append(docs, doc)
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return domain.NewStoreError("create batch", fmt.Errorf("count existing: %w", err))
	}
	if n > 0 {
		return domain.NewStoreError("create batch", fmt.Errorf("%d productos ya existen: %w", n, domain.ErrDuplicate))
	}

	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.NewStoreError("create batch", fmt.Errorf("insert many: %w", domain.ErrDuplicate))
		}
		return domain.NewStoreError("create batch", fmt.Errorf("insert many: %w", err))
	}
	return nil
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	list, err := r.find(ctx, bson.M{})
	if err != nil {
		return nil, domain.NewStoreError("list", err)
	}
	return list, nil
}

// Close cierra la conexión con MongoDB.
func (r *ProductRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *ProductRepo) find(ctx context.Context, filter any) ([]*entity.Product, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	list := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		p, err := fromDoc(d)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

func toDoc(p *entity.Product) (productDoc, error) {
	price, err := primitive.ParseDecimal128(p.UnitPrice.String())
	if err != nil {
		return productDoc{}, fmt.Errorf("producto %d: precio %s: %w", p.ID, p.UnitPrice, err)
	}
	tax, err := primitive.ParseDecimal128(p.TaxRate.String())
	if err != nil {
		return productDoc{}, fmt.Errorf("producto %d: iva %s: %w", p.ID, p.TaxRate, err)
	}
	return productDoc{
		ID:          p.ID,
		EANCode:     p.EANCode,
		Description: p.Description,
		Category:    p.Category,
		UnitPrice:   price,
		TaxRate:     tax,
	}, nil
}

func fromDoc(d productDoc) (*entity.Product, error) {
	price, err := decimal.NewFromString(d.UnitPrice.String())
	if err != nil {
		return nil, fmt.Errorf("producto %d: precio %s: %w", d.ID, d.UnitPrice, err)
	}
	tax, err := decimal.NewFromString(d.TaxRate.String())
	if err != nil {
		return nil, fmt.Errorf("producto %d: iva %s: %w", d.ID, d.TaxRate, err)
	}
	return &entity.Product{
		ID:          d.ID,
		EANCode:     d.EANCode,
		Description: d.Description,
		Category:    d.Category,
		UnitPrice:   price,
		TaxRate:     tax,
	}, nil
}
