package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/application/inventory"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

type invKey struct{ branchID, productID int }

// memRepo implementa el repositorio de inventario sobre un mapa, con la misma
// semántica de errores que el adaptador de Postgres.
type memRepo struct {
	entries map[invKey]int
}

func newMemRepo() *memRepo {
	return &memRepo{entries: map[invKey]int{}}
}

func (r *memRepo) GetAll(context.Context) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for k, qty := range r.entries {
		out = append(out, &entity.Inventory{BranchID: k.branchID, ProductID: k.productID, StockQuantity: qty})
	}
	return out, nil
}

func (r *memRepo) Get(_ context.Context, branchID, productID int) (*entity.Inventory, error) {
	qty, ok := r.entries[invKey{branchID, productID}]
	if !ok {
		return nil, nil
	}
	return &entity.Inventory{BranchID: branchID, ProductID: productID, StockQuantity: qty}, nil
}

func (r *memRepo) GetByProduct(_ context.Context, productID int) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for k, qty := range r.entries {
		if k.productID == productID {
			out = append(out, &entity.Inventory{BranchID: k.branchID, ProductID: k.productID, StockQuantity: qty})
		}
	}
	return out, nil
}

func (r *memRepo) Create(_ context.Context, inv *entity.Inventory) error {
	key := invKey{inv.BranchID, inv.ProductID}
	if _, ok := r.entries[key]; ok {
		return domain.ErrAlreadyExists
	}
	r.entries[key] = inv.StockQuantity
	return nil
}

func (r *memRepo) UpdateQuantity(_ context.Context, branchID, productID, qty int) error {
	key := invKey{branchID, productID}
	if _, ok := r.entries[key]; !ok {
		return domain.ErrNotFound
	}
	r.entries[key] = qty
	return nil
}

func (r *memRepo) AddStock(_ context.Context, branchID, productID, delta int) error {
	key := invKey{branchID, productID}
	if _, ok := r.entries[key]; !ok {
		return domain.ErrNotFound
	}
	r.entries[key] += delta
	return nil
}

func (r *memRepo) Delete(_ context.Context, branchID, productID int) error {
	key := invKey{branchID, productID}
	if _, ok := r.entries[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.entries, key)
	return nil
}

func TestInventario_CrearYConsultar(t *testing.T) {
	repo := newMemRepo()
	uc := inventory.NewUseCase(repo)
	ctx := context.Background()

	err := uc.Create(ctx, &entity.Inventory{BranchID: 1, ProductID: 10, StockQuantity: 50})
	require.NoError(t, err)

	inv, err := uc.Get(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 50, inv.StockQuantity)
}

// La creación repetida de la misma pareja falla y conserva la cantidad original.
func TestInventario_CrearDuplicado(t *testing.T) {
	repo := newMemRepo()
	uc := inventory.NewUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, &entity.Inventory{BranchID: 1, ProductID: 10, StockQuantity: 50}))
	err := uc.Create(ctx, &entity.Inventory{BranchID: 1, ProductID: 10, StockQuantity: 99})

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	inv, err := uc.Get(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 50, inv.StockQuantity, "debe conservarse la cantidad de la primera creación")
}

func TestInventario_GetInexistente(t *testing.T) {
	uc := inventory.NewUseCase(newMemRepo())

	_, err := uc.Get(context.Background(), 1, 10)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventario_AjustePorDelta(t *testing.T) {
	repo := newMemRepo()
	uc := inventory.NewUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, &entity.Inventory{BranchID: 1, ProductID: 10, StockQuantity: 10}))

	require.NoError(t, uc.AddStock(ctx, 1, 10, 15))
	require.NoError(t, uc.AddStock(ctx, 1, 10, -4))

	inv, err := uc.Get(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 21, inv.StockQuantity, "10 + 15 - 4 = 21")
}

func TestInventario_AjusteSobreParejaInexistente(t *testing.T) {
	uc := inventory.NewUseCase(newMemRepo())

	err := uc.AddStock(context.Background(), 1, 10, 5)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventario_DeltaCeroInvalido(t *testing.T) {
	repo := newMemRepo()
	uc := inventory.NewUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, &entity.Inventory{BranchID: 1, ProductID: 10, StockQuantity: 10}))
	err := uc.AddStock(ctx, 1, 10, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventario_IdsInvalidos(t *testing.T) {
	uc := inventory.NewUseCase(newMemRepo())
	ctx := context.Background()

	_, err := uc.Get(ctx, 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.UpdateQuantity(ctx, 1, -3, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.Delete(ctx, -1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventario_GetByProduct(t *testing.T) {
	repo := newMemRepo()
	uc := inventory.NewUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, &entity.Inventory{BranchID: 1, ProductID: 10, StockQuantity: 5}))
	require.NoError(t, uc.Create(ctx, &entity.Inventory{BranchID: 2, ProductID: 10, StockQuantity: 8}))
	require.NoError(t, uc.Create(ctx, &entity.Inventory{BranchID: 1, ProductID: 20, StockQuantity: 3}))

	rows, err := uc.GetByProduct(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "solo las sucursales con el producto 10")
}
