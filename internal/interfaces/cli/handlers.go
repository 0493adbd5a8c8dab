package cli

import (
	"context"
	"errors"

	"github.com/jhoicas/gestion-productos/internal/application/dto"
	"github.com/jhoicas/gestion-productos/internal/domain"
)

func (c *Console) importProducts(ctx context.Context) error {
	path, err := c.ask("\n Ingrese la ruta del archivo CSV [" + c.defaultFile + "]: ")
	if err != nil {
		return err
	}
	if path == "" {
		path = c.defaultFile
	}
	res, err := c.importer.ImportFile(ctx, path)
	if err != nil {
		var fileErr *domain.FileError
		if errors.As(err, &fileErr) {
			c.printf("---> Error al leer el archivo: %v\n", fileErr.Err)
			return nil
		}
		c.printf("---> Error al importar productos: %v\n", err)
		return nil
	}
	PrintImportResult(c.out, res)
	return nil
}

func (c *Console) searchProducts(ctx context.Context) error {
	q, err := c.ask("\n Ingrese la descripción del producto a buscar: ")
	if err != nil {
		return err
	}
	found, err := c.products.Search(ctx, q)
	if err != nil {
		c.printf("---> Error al buscar productos: %v\n", err)
		return nil
	}
	if len(found) == 0 {
		c.println(msgNoSearchResults)
		return nil
	}
	c.println(headerFound)
	PrintProducts(c.out, found)
	return nil
}

func (c *Console) viewProduct(ctx context.Context) error {
	id, err := c.askID("\n Ingrese el ID del producto:")
	if err != nil {
		return c.inputFailure(err)
	}
	p, err := c.products.GetByID(ctx, id)
	if err != nil {
		c.printf("---> Error al buscar el producto: %v\n", err)
		return nil
	}
	if p == nil {
		c.println(msgNotFound)
		return nil
	}
	c.println(headerDetails)
	c.println(p.String())
	return nil
}

func (c *Console) updateProduct(ctx context.Context) error {
	id, err := c.askID("\nIngrese el ID del producto a actualizar: ")
	if err != nil {
		return c.inputFailure(err)
	}
	current, err := c.products.GetByID(ctx, id)
	if err != nil {
		c.printf("---> Error al actualizar el producto: %v\n", err)
		return nil
	}
	if current == nil {
		c.println(msgNotFound)
		return nil
	}
	c.println(headerUpdateDetails)
	c.println(current.String())

	in, err := c.askUpdate()
	if err != nil {
		return err
	}
	if _, err := c.products.Update(ctx, id, in); err != nil {
		c.printf("---> Error al actualizar el producto: %v\n", err)
		return nil
	}
	c.println(msgUpdated)
	return nil
}

// askUpdate pide los cuatro campos en orden: precio, tipo, descripción, IVA.
func (c *Console) askUpdate() (dto.UpdateProductRequest, error) {
	var in dto.UpdateProductRequest
	var err error
	if in.UnitPrice, err = c.askDecimal("\nIngrese el nuevo precio:"); err != nil {
		return in, err
	}
	if in.Category, err = c.ask("Ingrese el nuevo tipo de producto:"); err != nil {
		return in, err
	}
	if in.Description, err = c.ask("Ingrese la nueva descripción:"); err != nil {
		return in, err
	}
	if in.TaxRate, err = c.askDecimal("Ingrese el nuevo porcentaje de IVA:"); err != nil {
		return in, err
	}
	return in, nil
}

func (c *Console) listProducts(ctx context.Context) error {
	all, err := c.products.List(ctx)
	if err != nil {
		c.printf("---> Error al listar productos: %v\n", err)
		return nil
	}
	c.println(headerList)
	if len(all) == 0 {
		c.println(msgEmptyCatalogue)
		return nil
	}
	PrintProducts(c.out, all)
	return nil
}

// inputFailure traduce un InputError en mensaje y vuelve al menú; errExit sigue de largo.
func (c *Console) inputFailure(err error) error {
	var inErr *domain.InputError
	if errors.As(err, &inErr) {
		c.println(msgInvalidID)
		return nil
	}
	return err
}
