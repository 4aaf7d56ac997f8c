package sales

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// QueryUseCase lecturas de ventas: historial y detalle. Lecturas directas al
// repositorio, sin unidad de trabajo.
type QueryUseCase struct {
	saleRepo   repository.SaleRepository
	detailRepo repository.SaleDetailRepository
}

// NewQueryUseCase construye las consultas de venta.
func NewQueryUseCase(saleRepo repository.SaleRepository, detailRepo repository.SaleDetailRepository) *QueryUseCase {
	return &QueryUseCase{saleRepo: saleRepo, detailRepo: detailRepo}
}

// ListSales devuelve todas las cabeceras, la más reciente primero.
// Sin ventas registradas devuelve el slice vacío, no un error.
func (uc *QueryUseCase) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	return uc.saleRepo.GetAll(ctx)
}

// GetSale devuelve la cabecera con sus líneas; domain.ErrNotFound si no existe.
func (uc *QueryUseCase) GetSale(ctx context.Context, id int) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.detailRepo.GetBySale(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, d := range details {
		sale.Details = append(sale.Details, *d)
	}
	return sale, nil
}

// ListDetails devuelve todas las líneas de venta registradas.
func (uc *QueryUseCase) ListDetails(ctx context.Context) ([]*entity.SaleDetail, error) {
	return uc.detailRepo.GetAll(ctx)
}

// GetDetailsBySale devuelve las líneas de una venta en orden de inserción.
func (uc *QueryUseCase) GetDetailsBySale(ctx context.Context, saleID int) ([]*entity.SaleDetail, error) {
	return uc.detailRepo.GetBySale(ctx, saleID)
}
