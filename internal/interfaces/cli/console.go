// Package cli implementa la consola interactiva: un único estado (menú) y seis
// transiciones. Entrada y salida se inyectan para poder guionar la sesión en tests.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/gestion-productos/internal/application/importer"
	"github.com/jhoicas/gestion-productos/internal/application/usecase"
	"github.com/jhoicas/gestion-productos/pkg/logger"
)

// errExit corta el loop del menú (opción Salir o fin de la entrada).
var errExit = errors.New("salir")

// Config dependencias de la consola.
type Config struct {
	Products    *usecase.ProductUseCase
	Importer    *importer.Importer
	DefaultFile string // ruta usada cuando el usuario no ingresa una
	In          io.Reader
	Out         io.Writer
	Log         *logger.Logger
}

// Console lee opciones de In y escribe resultados en Out.
type Console struct {
	products    *usecase.ProductUseCase
	importer    *importer.Importer
	defaultFile string
	in          *bufio.Scanner
	out         io.Writer
	log         *logger.Logger
	menu        *Menu
}

// NewConsole construye la consola.
func NewConsole(cfg Config) *Console {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	c := &Console{
		products:    cfg.Products,
		importer:    cfg.Importer,
		defaultFile: cfg.DefaultFile,
		in:          bufio.NewScanner(cfg.In),
		out:         cfg.Out,
		log:         log,
	}
	c.menu = buildMainMenu(c)
	return c
}

// Run muestra el menú hasta que el usuario elige Salir o se agota la entrada.
// Ningún error de una operación termina el loop.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.menu.Render(c.out)
		line, ok := c.readLine()
		if !ok {
			c.println(msgBye)
			return nil
		}
		item, err := c.menu.Select(line)
		if err != nil {
			c.println(msgInvalidOption)
			continue
		}
		if err := item.Action(ctx); err != nil {
			if errors.Is(err, errExit) {
				c.println(msgBye)
				return nil
			}
			c.log.Error().Err(err).Str("option", item.Label).Msg("operación de menú")
			c.printf("---> Error: %v\n", err)
		}
	}
}

// readLine devuelve la siguiente línea sin espacios extremos; false en EOF.
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
