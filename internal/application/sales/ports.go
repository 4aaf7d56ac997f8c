package sales

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad de trabajo de la venta: el runner
// es el único dueño de la decisión Commit/Rollback, y un error del callback
// revierte cabecera, líneas y ajustes de stock como un todo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		detailRepo repository.SaleDetailRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante PDF de una venta ya persistida.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, branch *entity.Branch, customer *entity.Customer) ([]byte, error)
}
