package inventory

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// UseCase casos de uso del libro de inventario por (sucursal, producto).
// El ajuste por delta (AddStock) es atómico a nivel de repositorio; aquí solo
// se valida la entrada y se traducen los faltantes.
type UseCase struct {
	repo repository.InventoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.InventoryRepository) *UseCase {
	return &UseCase{repo: repo}
}

// GetAll lista todas las entradas de inventario.
func (uc *UseCase) GetAll(ctx context.Context) ([]*entity.Inventory, error) {
	return uc.repo.GetAll(ctx)
}

// Get obtiene la entrada de una pareja; domain.ErrNotFound si no existe.
func (uc *UseCase) Get(ctx context.Context, branchID, productID int) (*entity.Inventory, error) {
	if branchID <= 0 || productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.repo.Get(ctx, branchID, productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// GetByProduct lista el stock de un producto en todas las sucursales.
func (uc *UseCase) GetByProduct(ctx context.Context, productID int) ([]*entity.Inventory, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.GetByProduct(ctx, productID)
}

// Create registra una pareja nueva; domain.ErrAlreadyExists si ya tiene entrada
// (la cantidad almacenada queda la de la primera creación).
func (uc *UseCase) Create(ctx context.Context, inv *entity.Inventory) error {
	if inv.BranchID <= 0 || inv.ProductID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Create(ctx, inv)
}

// UpdateQuantity reemplaza la cantidad completa de la pareja.
func (uc *UseCase) UpdateQuantity(ctx context.Context, branchID, productID, quantity int) error {
	if branchID <= 0 || productID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateQuantity(ctx, branchID, productID, quantity)
}

// AddStock ajusta la cantidad por delta (positivo o negativo) en un paso atómico.
func (uc *UseCase) AddStock(ctx context.Context, branchID, productID, delta int) error {
	if branchID <= 0 || productID <= 0 || delta == 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.AddStock(ctx, branchID, productID, delta)
}

// Delete elimina la entrada de la pareja.
func (uc *UseCase) Delete(ctx context.Context, branchID, productID int) error {
	if branchID <= 0 || productID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, branchID, productID)
}
