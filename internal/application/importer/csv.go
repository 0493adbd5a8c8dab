package importer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/gestion-productos/internal/domain"
	"github.com/jhoicas/gestion-productos/internal/domain/entity"
	"github.com/jhoicas/gestion-productos/pkg/config"
)

// Orden fijo de columnas: id;codigo;descripcion;tipo;precio;iva
const (
	minFields      = 6
	colID          = 0
	colEANCode     = 1
	colDescription = 2
	colCategory    = 3
	colUnitPrice   = 4
	colTaxRate     = 5
)

// Motivos de rechazo de una fila.
const (
	ReasonNotEnoughFields = "la línea no contiene suficientes campos"
	ReasonInvalidID       = "id inválido"
	ReasonInvalidPrice    = "precio inválido"
	ReasonInvalidTax      = "porcentaje de IVA inválido"
)

// maxLineSize acota una línea del archivo; más larga es un error de lectura.
const maxLineSize = 1024 * 1024

// Row es una fila leída del archivo, con su número de línea y el texto tal como vino.
type Row struct {
	Line   int
	Raw    string
	Fields []string
}

// RowReader lee el archivo línea por línea y separa cada una por el delimitador.
// Las comillas no tienen significado especial. La primera línea (encabezado) se descarta.
type RowReader struct {
	sc        *bufio.Scanner
	delimiter string
	line      int
}

// NewRowReader construye el lector aplicando la decodificación de charset indicada.
// Un BOM UTF-8 al inicio del archivo se descarta.
func NewRowReader(r io.Reader, delimiter rune, encoding string) (*RowReader, error) {
	dec, err := decoderFor(encoding)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(transform.NewReader(r, dec))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &RowReader{sc: sc, delimiter: string(delimiter)}, nil
}

// Next devuelve la siguiente fila; io.EOF marca el final. Una línea en blanco se
// devuelve igual (con un solo campo vacío) para que ParseRow la reporte.
func (rr *RowReader) Next() (*Row, error) {
	for rr.sc.Scan() {
		rr.line++
		if rr.line == 1 {
			continue
		}
		raw := strings.TrimSuffix(rr.sc.Text(), "\r")
		return &Row{Line: rr.line, Raw: raw, Fields: strings.Split(raw, rr.delimiter)}, nil
	}
	if err := rr.sc.Err(); err != nil {
		return nil, fmt.Errorf("línea %d: %w", rr.line+1, err)
	}
	return nil, io.EOF
}

// ParseRow valida una fila y la convierte en Product.
// Campos extra después del sexto se ignoran.
func ParseRow(row *Row) (*entity.Product, error) {
	f := row.Fields
	if len(f) < minFields {
		return nil, &domain.ParseError{Line: row.Line, Raw: row.Raw, Reason: ReasonNotEnoughFields}
	}

	// La columna id del store es de 32 bits.
	id, err := strconv.ParseInt(strings.TrimSpace(f[colID]), 10, 32)
	if err != nil {
		return nil, &domain.ParseError{Line: row.Line, Raw: row.Raw, Reason: ReasonInvalidID, Err: err}
	}
	price, err := ParseDecimal(f[colUnitPrice])
	if err == nil && !entity.ValidUnitPrice(price) {
		err = fmt.Errorf("precio %s negativo: %w", price, domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, &domain.ParseError{Line: row.Line, Raw: row.Raw, Reason: ReasonInvalidPrice, Err: err}
	}
	tax, err := ParseDecimal(f[colTaxRate])
	if err == nil && !entity.ValidTaxRate(tax) {
		err = fmt.Errorf("IVA %s fuera de rango 0-100: %w", tax, domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, &domain.ParseError{Line: row.Line, Raw: row.Raw, Reason: ReasonInvalidTax, Err: err}
	}

	return &entity.Product{
		ID:          int(id),
		EANCode:     strings.TrimSpace(f[colEANCode]),
		Description: strings.TrimSpace(f[colDescription]),
		Category:    strings.TrimSpace(f[colCategory]),
		UnitPrice:   price,
		TaxRate:     tax,
	}, nil
}

// ParseDecimal acepta "12.50" y también "12,50" (planillas con configuración regional española).
// Si el texto trae punto y coma a la vez no se adivina el formato.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("decimal %q: %w", s, domain.ErrInvalidInput)
	}
	return d, nil
}

func decoderFor(encoding string) (transform.Transformer, error) {
	switch strings.ToLower(encoding) {
	case "", config.EncodingUTF8:
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case config.EncodingWindows1252:
		return charmap.Windows1252.NewDecoder(), nil
	case config.EncodingISO88591:
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("codificación no soportada %q: %w", encoding, domain.ErrInvalidInput)
	}
}
