package repository

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// InventoryRepository define el puerto del libro de inventario por
// (sucursal, producto). Es el único recurso mutable compartido entre ventas
// concurrentes; AddStock es la frontera de concurrencia.
type InventoryRepository interface {
	GetAll(ctx context.Context) ([]*entity.Inventory, error)
	// Get devuelve (nil, nil) si la pareja no tiene entrada.
	Get(ctx context.Context, branchID, productID int) (*entity.Inventory, error)
	// GetByProduct lista el stock de un producto en todas las sucursales.
	GetByProduct(ctx context.Context, productID int) ([]*entity.Inventory, error)
	// Create falla con domain.ErrAlreadyExists si la pareja ya tiene entrada.
	Create(ctx context.Context, inv *entity.Inventory) error
	// UpdateQuantity reemplaza la cantidad; domain.ErrNotFound si no hay entrada.
	UpdateQuantity(ctx context.Context, branchID, productID, quantity int) error
	// AddStock suma delta (positivo o negativo) en un único statement atómico:
	// la verificación de existencia y el ajuste no son separables, de modo que
	// ajustes concurrentes sobre la misma llave serializan en la fila y no se
	// pierden actualizaciones. domain.ErrNotFound si no hay entrada.
	AddStock(ctx context.Context, branchID, productID, delta int) error
	// Delete elimina la entrada; domain.ErrNotFound si no existe.
	Delete(ctx context.Context, branchID, productID int) error
}
