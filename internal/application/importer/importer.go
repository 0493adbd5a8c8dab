// Package importer carga productos desde un archivo delimitado y los reconcilia
// contra el repositorio: los IDs existentes se sobrescriben y los nuevos se
// insertan juntos en un único lote al final.
package importer

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-productos/internal/domain"
	"github.com/jhoicas/gestion-productos/internal/domain/entity"
	"github.com/jhoicas/gestion-productos/internal/domain/repository"
	"github.com/jhoicas/gestion-productos/pkg/logger"
)

// Options parámetros de lectura del archivo.
type Options struct {
	Delimiter rune
	Encoding  string
}

// Result resume una importación.
type Result struct {
	RunID   string
	Source  string
	New     int
	Updated int
	Skipped []*domain.ParseError
}

// Importer caso de uso de importación.
type Importer struct {
	repo repository.ProductRepository
	opts Options
	log  *logger.Logger
}

// New construye el importador. Delimiter cero equivale a ';'.
func New(repo repository.ProductRepository, opts Options, log *logger.Logger) *Importer {
	if opts.Delimiter == 0 {
		opts.Delimiter = ';'
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Importer{repo: repo, opts: opts, log: log}
}

// ImportFile abre path e importa su contenido. Si el archivo no se puede abrir
// devuelve *domain.FileError y no toca el repositorio.
func (im *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.FileError{Path: path, Err: err}
	}
	defer f.Close()
	return im.Import(ctx, f, path)
}

// Import procesa r línea por línea. Las filas mal formadas se registran en
// Result.Skipped y no detienen la importación. Un error del repositorio aborta:
// las actualizaciones ya aplicadas quedan, los productos nuevos no se insertan.
func (im *Importer) Import(ctx context.Context, r io.Reader, source string) (*Result, error) {
	res := &Result{RunID: uuid.NewString(), Source: source}
	log := im.log.Child(im.log.With().Str("run_id", res.RunID).Str("source", source))

	rows, err := NewRowReader(r, im.opts.Delimiter, im.opts.Encoding)
	if err != nil {
		return nil, err
	}

	staged := make(map[int]*entity.Product)
	var order []int

	for {
		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *domain.ParseError
			if errors.As(err, &perr) {
				res.Skipped = append(res.Skipped, perr)
				log.Warn().Int("line", perr.Line).Str("reason", perr.Reason).Msg("fila omitida")
				continue
			}
			return nil, &domain.FileError{Path: source, Err: err}
		}

		p, err := ParseRow(row)
		if err != nil {
			var perr *domain.ParseError
			if errors.As(err, &perr) {
				res.Skipped = append(res.Skipped, perr)
				log.Warn().Int("line", perr.Line).Str("reason", perr.Reason).Str("raw", perr.Raw).Msg("fila omitida")
				continue
			}
			return nil, err
		}

		// Un ID repetido dentro del mismo archivo sobrescribe el producto ya preparado.
		if prev, ok := staged[p.ID]; ok {
			prev.Overwrite(p)
			res.Updated++
			continue
		}

		existing, err := im.repo.GetByID(ctx, p.ID)
		if err != nil {
			log.Error().Err(err).Int("id", p.ID).Msg("consulta de producto existente")
			return nil, domain.NewStoreError("get", err)
		}
		if existing != nil {
			existing.Overwrite(p)
			if err := im.repo.Upsert(ctx, existing); err != nil {
				log.Error().Err(err).Int("id", p.ID).Msg("actualización de producto")
				return nil, domain.NewStoreError("upsert", err)
			}
			res.Updated++
			continue
		}

		staged[p.ID] = p
		order = append(order, p.ID)
	}

	batch := make([]*entity.Product, 0, len(order))
	for _, id := range order {
		batch = append(batch, staged[id])
	}
	if err := im.repo.CreateBatch(ctx, batch); err != nil {
		log.Error().Err(err).Int("batch", len(batch)).Msg("inserción del lote de productos nuevos")
		return nil, domain.NewStoreError("create batch", err)
	}
	res.New = len(batch)

	log.Info().
		Int("new", res.New).
		Int("updated", res.Updated).
		Int("skipped", len(res.Skipped)).
		Msg("importación finalizada")
	return res, nil
}
