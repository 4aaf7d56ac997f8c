package sales

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una venta persistida.
type ReceiptUseCase struct {
	queries   *QueryUseCase
	branches  repository.Store[entity.Branch]
	customers repository.Store[entity.Customer]
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	queries *QueryUseCase,
	branches repository.Store[entity.Branch],
	customers repository.Store[entity.Customer],
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		queries:   queries,
		branches:  branches,
		customers: customers,
		generator: generator,
	}
}

// Execute carga la venta con sus líneas más la sucursal y el cliente, y
// devuelve los bytes del PDF. domain.ErrNotFound si la venta no existe.
// Sucursal o cliente borrados después de la venta (sin cascada) se renderizan
// con los datos que haya.
func (uc *ReceiptUseCase) Execute(ctx context.Context, saleID int) ([]byte, error) {
	sale, err := uc.queries.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	branch, err := uc.branches.GetByID(ctx, sale.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		branch = &entity.Branch{ID: sale.BranchID, Name: "Sucursal eliminada"}
	}

	customer, err := uc.customers.GetByID(ctx, sale.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		customer = &entity.Customer{ID: sale.CustomerID, FirstName: "Cliente eliminado"}
	}

	return uc.generator.GenerateReceipt(ctx, sale, branch, customer)
}
