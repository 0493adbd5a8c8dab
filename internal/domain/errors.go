package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// ParseError describe una línea del archivo de importación que no pudo interpretarse.
// La línea se omite y la importación continúa.
type ParseError struct {
	Line   int    // número de línea en el archivo (1 = encabezado)
	Raw    string // contenido original de la línea
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("línea %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("línea %d: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FileError indica que el archivo de importación no se pudo abrir o leer.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("archivo %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// StoreError envuelve cualquier fallo de persistencia (conexión, constraint, consulta).
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// InputError indica un valor ingresado por consola que no tiene el formato esperado.
type InputError struct {
	Field string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("valor inválido para %s: %q", e.Field, e.Value)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// NewStoreError construye un StoreError; devuelve nil si err es nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
