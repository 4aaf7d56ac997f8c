package sales

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// CreateSaleUseCase coordina la venta transaccional: cabecera + líneas +
// descuento de inventario por línea, todo o nada. Es el único caso de uso que
// toca varias tablas en una misma unidad de trabajo.
//
// Secuencia dentro de la transacción, estrictamente en el orden recibido:
// cabecera → línea 1 → stock 1 → línea 2 → stock 2 → ... El stock se descuenta
// línea a línea (no en un segundo pase) para que el error quede atado a la
// línea exacta que falló.
type CreateSaleUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewCreateSaleUseCase construye el coordinador.
func NewCreateSaleUseCase(txRunner TxRunner, log *logger.Logger) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, log: log}
}

// Execute procesa la venta y devuelve el id asignado. Fallos posibles:
//   - domain.ErrInvalidInput: sin líneas, o alguna línea con cantidad no positiva
//     (se rechaza antes de cualquier write).
//   - *domain.ReferenceNotFoundError: sucursal/cliente/empleado/producto inexistente.
//   - *domain.StockEntryMissingError: alguna línea sin entrada de inventario
//     para (sucursal, producto).
//   - *domain.StorageError: cualquier otro fallo del motor.
//
// En cualquier fallo la transacción completa se revierte: ningún lector
// concurrente observa una venta parcial. El total de la cabecera se persiste
// tal como lo envió el caller, sin cotejarlo contra la suma de subtotales, y el
// stock puede quedar negativo tras el descuento; ambos comportamientos son los
// del sistema en producción.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, sale *entity.Sale) (int, error) {
	if len(sale.Details) == 0 {
		return 0, domain.ErrInvalidInput
	}
	for _, d := range sale.Details {
		if d.Quantity <= 0 || d.ProductID <= 0 {
			return 0, domain.ErrInvalidInput
		}
	}
	if sale.SaleDate.IsZero() {
		sale.SaleDate = time.Now()
	}

	uc.log.Info().
		Int("branch_id", sale.BranchID).
		Int("customer_id", sale.CustomerID).
		Int("lines", len(sale.Details)).
		Msg("procesando venta")

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		detailRepo repository.SaleDetailRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		saleID, err := saleRepo.CreateHeader(ctx, sale)
		if err != nil {
			return err
		}

		for i := range sale.Details {
			d := &sale.Details[i]
			d.SaleID = saleID
			if d.Subtotal.IsZero() {
				d.Subtotal = d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
			}
			if err := detailRepo.Create(ctx, d); err != nil {
				return err
			}
			// Descuento atómico; si la pareja no tiene entrada, la venta entera aborta.
			if err := inventoryRepo.AddStock(ctx, sale.BranchID, d.ProductID, -d.Quantity); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return &domain.StockEntryMissingError{BranchID: sale.BranchID, ProductID: d.ProductID}
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Msg("venta revertida")
		return 0, err
	}

	uc.log.Info().Int("sale_id", sale.ID).Msg("venta confirmada e inventario actualizado")
	return sale.ID, nil
}
