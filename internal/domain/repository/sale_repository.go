package repository

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia de cabeceras de venta.
type SaleRepository interface {
	// GetAll lista las cabeceras ordenadas por fecha descendente (más reciente primero).
	GetAll(ctx context.Context) ([]*entity.Sale, error)
	// GetByID devuelve la cabecera (sin líneas) o (nil, nil) si no existe.
	GetByID(ctx context.Context, id int) (*entity.Sale, error)
	// CreateHeader inserta la cabecera y devuelve el id asignado por la base.
	// Una violación de llave foránea se clasifica como
	// *domain.ReferenceNotFoundError nombrando la entidad y el id faltantes.
	CreateHeader(ctx context.Context, sale *entity.Sale) (int, error)
}

// SaleDetailRepository define el puerto de persistencia de líneas de venta.
type SaleDetailRepository interface {
	GetAll(ctx context.Context) ([]*entity.SaleDetail, error)
	// GetBySale devuelve las líneas de una venta en orden de inserción.
	GetBySale(ctx context.Context, saleID int) ([]*entity.SaleDetail, error)
	// Create inserta una línea; el SaleID ya debe estar asignado.
	Create(ctx context.Context, detail *entity.SaleDetail) error
}
