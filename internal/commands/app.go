package commands

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-productos/internal/application/importer"
	"github.com/jhoicas/gestion-productos/internal/application/usecase"
	"github.com/jhoicas/gestion-productos/internal/domain/repository"
	"github.com/jhoicas/gestion-productos/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-productos/internal/infrastructure/mongodb"
	"github.com/jhoicas/gestion-productos/internal/infrastructure/postgres"
	"github.com/jhoicas/gestion-productos/pkg/config"
	"github.com/jhoicas/gestion-productos/pkg/logger"
)

// app agrupa las dependencias armadas a partir de la configuración.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	repo     repository.ProductRepository
	products *usecase.ProductUseCase
	importer *importer.Importer
	close    func()
}

// newApp carga la configuración, abre el store elegido y asegura el esquema.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	repo, closeFn, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		closeFn()
		return nil, fmt.Errorf("preparar esquema: %w", err)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		repo:     repo,
		products: usecase.NewProductUseCase(repo),
		importer: importer.New(repo, importer.Options{
			Delimiter: cfg.Import.DelimiterRune(),
			Encoding:  cfg.Import.Encoding,
		}, log),
		close: closeFn,
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.ProductRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return postgres.NewProductRepository(pool), pool.Close, nil
	case config.DriverMongoDB:
		repo, err := mongodb.NewProductRepository(ctx, cfg.Mongo.URI, cfg.Mongo.DBName)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a MongoDB: %w", err)
		}
		return repo, func() {
			if err := repo.Close(context.Background()); err != nil {
				log.Error().Err(err).Msg("cerrar conexión MongoDB")
			}
		}, nil
	case config.DriverMemory:
		log.Warn().Msg("store en memoria: los datos se pierden al salir")
		return memory.NewProductRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
	}
}
