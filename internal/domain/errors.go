package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrAlreadyExists = errors.New("el recurso ya existe")
	ErrInvalidInput  = errors.New("entrada inválida")
)

// ReferenceNotFoundError indica que una llave foránea de la venta apunta a un
// registro inexistente (sucursal, cliente, empleado o producto). El adaptador de
// almacenamiento la produce a partir de la violación de constraint del motor,
// nombrando la entidad y el id ofensivos en lugar de exponer códigos SQL.
type ReferenceNotFoundError struct {
	Entity string // branch, customer, employee, product
	ID     int
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("la referencia %s con id %d no existe", e.Entity, e.ID)
}

// StockEntryMissingError indica que una línea de venta apunta a una combinación
// (sucursal, producto) sin entrada de inventario. Distinto de stock insuficiente:
// aquí la fila no existe en absoluto.
type StockEntryMissingError struct {
	BranchID  int
	ProductID int
}

func (e *StockEntryMissingError) Error() string {
	return fmt.Sprintf("no existe inventario para el producto %d en la sucursal %d", e.ProductID, e.BranchID)
}

// StorageError envuelve cualquier fallo del motor de almacenamiento no clasificado.
// El diagnóstico original se conserva para el operador (logs) pero no debe
// mostrarse textual al cliente HTTP.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("fallo de almacenamiento en %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
