package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/application/sales"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: los writes del callback van a
// una copia del estado y solo se publican si el callback termina sin error.
// Así los tests verifican el contrato todo-o-nada del coordinador sin base real.
// ──────────────────────────────────────────────────────────────────────────────

type invKey struct{ branchID, productID int }

type fakeStore struct {
	branches   map[int]bool
	customers  map[int]bool
	employees  map[int]bool
	products   map[int]bool
	inventory  map[invKey]int
	sales      map[int]entity.Sale
	details    []entity.SaleDetail
	nextSaleID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		branches:   map[int]bool{},
		customers:  map[int]bool{},
		employees:  map[int]bool{},
		products:   map[int]bool{},
		inventory:  map[invKey]int{},
		sales:      map[int]entity.Sale{},
		nextSaleID: 1,
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	c.nextSaleID = s.nextSaleID
	for k, v := range s.branches {
		c.branches[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.employees {
		c.employees[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.inventory {
		c.inventory[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	c.details = append(c.details, s.details...)
	return c
}

type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	detailRepo repository.SaleDetailRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	tx := r.store.clone()
	err := fn(&fakeSaleRepo{tx}, &fakeDetailRepo{tx}, &fakeInventoryRepo{tx})
	if err != nil {
		return err // rollback: el estado original queda intacto
	}
	*r.store = *tx // commit
	return nil
}

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) GetAll(context.Context) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for id := range r.s.sales {
		sale := r.s.sales[id]
		out = append(out, &sale)
	}
	return out, nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id int) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return &sale, nil
}

func (r *fakeSaleRepo) CreateHeader(_ context.Context, sale *entity.Sale) (int, error) {
	switch {
	case !r.s.branches[sale.BranchID]:
		return 0, &domain.ReferenceNotFoundError{Entity: "branch", ID: sale.BranchID}
	case !r.s.customers[sale.CustomerID]:
		return 0, &domain.ReferenceNotFoundError{Entity: "customer", ID: sale.CustomerID}
	case !r.s.employees[sale.EmployeeID]:
		return 0, &domain.ReferenceNotFoundError{Entity: "employee", ID: sale.EmployeeID}
	}
	sale.ID = r.s.nextSaleID
	r.s.nextSaleID++
	header := *sale
	header.Details = nil
	r.s.sales[sale.ID] = header
	return sale.ID, nil
}

type fakeDetailRepo struct{ s *fakeStore }

func (r *fakeDetailRepo) GetAll(context.Context) ([]*entity.SaleDetail, error) {
	var out []*entity.SaleDetail
	for i := range r.s.details {
		out = append(out, &r.s.details[i])
	}
	return out, nil
}

func (r *fakeDetailRepo) GetBySale(_ context.Context, saleID int) ([]*entity.SaleDetail, error) {
	var out []*entity.SaleDetail
	for i := range r.s.details {
		if r.s.details[i].SaleID == saleID {
			out = append(out, &r.s.details[i])
		}
	}
	return out, nil
}

func (r *fakeDetailRepo) Create(_ context.Context, d *entity.SaleDetail) error {
	if !r.s.products[d.ProductID] {
		return &domain.ReferenceNotFoundError{Entity: "product", ID: d.ProductID}
	}
	r.s.details = append(r.s.details, *d)
	return nil
}

type fakeInventoryRepo struct{ s *fakeStore }

func (r *fakeInventoryRepo) GetAll(context.Context) ([]*entity.Inventory, error) { return nil, nil }

func (r *fakeInventoryRepo) Get(_ context.Context, branchID, productID int) (*entity.Inventory, error) {
	qty, ok := r.s.inventory[invKey{branchID, productID}]
	if !ok {
		return nil, nil
	}
	return &entity.Inventory{BranchID: branchID, ProductID: productID, StockQuantity: qty}, nil
}

func (r *fakeInventoryRepo) GetByProduct(context.Context, int) ([]*entity.Inventory, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) Create(_ context.Context, inv *entity.Inventory) error {
	key := invKey{inv.BranchID, inv.ProductID}
	if _, ok := r.s.inventory[key]; ok {
		return domain.ErrAlreadyExists
	}
	r.s.inventory[key] = inv.StockQuantity
	return nil
}

func (r *fakeInventoryRepo) UpdateQuantity(_ context.Context, branchID, productID, qty int) error {
	key := invKey{branchID, productID}
	if _, ok := r.s.inventory[key]; !ok {
		return domain.ErrNotFound
	}
	r.s.inventory[key] = qty
	return nil
}

func (r *fakeInventoryRepo) AddStock(_ context.Context, branchID, productID, delta int) error {
	key := invKey{branchID, productID}
	if _, ok := r.s.inventory[key]; !ok {
		return domain.ErrNotFound
	}
	r.s.inventory[key] += delta
	return nil
}

func (r *fakeInventoryRepo) Delete(_ context.Context, branchID, productID int) error {
	key := invKey{branchID, productID}
	if _, ok := r.s.inventory[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.inventory, key)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base: sucursal 1, cliente 7, empleado 3, producto 10 con 5 unidades
// en la sucursal 1.
// ──────────────────────────────────────────────────────────────────────────────

func newSeededStore() *fakeStore {
	store := newFakeStore()
	store.branches[1] = true
	store.customers[7] = true
	store.employees[3] = true
	store.products[10] = true
	store.inventory[invKey{1, 10}] = 5
	return store
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func saleWithLines(lines ...entity.SaleDetail) *entity.Sale {
	return &entity.Sale{
		TotalAmount: decimal.NewFromInt(200),
		BranchID:    1,
		CustomerID:  7,
		EmployeeID:  3,
		Details:     lines,
	}
}

func TestCreateSale_Exitosa(t *testing.T) {
	store := newSeededStore()
	uc := sales.NewCreateSaleUseCase(&fakeTxRunner{store}, testLogger())

	id, err := uc.Execute(context.Background(), saleWithLines(
		entity.SaleDetail{ProductID: 10, Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
	))

	require.NoError(t, err)
	assert.Equal(t, 1, id, "la primera venta debe recibir el id 1")
	assert.Equal(t, 3, store.inventory[invKey{1, 10}], "el stock debe bajar de 5 a 3")
	require.Len(t, store.details, 1)
	assert.Equal(t, 1, store.details[0].SaleID)
	assert.True(t, store.details[0].Subtotal.Equal(decimal.NewFromInt(200)),
		"el subtotal debe ser cantidad × precio unitario")
	_, ok := store.sales[1]
	assert.True(t, ok, "la cabecera debe quedar persistida")
}

func TestCreateSale_SinLineas(t *testing.T) {
	store := newSeededStore()
	uc := sales.NewCreateSaleUseCase(&fakeTxRunner{store}, testLogger())

	_, err := uc.Execute(context.Background(), saleWithLines())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.sales, "no debe haber ningún write antes de validar")
}

func TestCreateSale_CantidadNoPositiva(t *testing.T) {
	store := newSeededStore()
	uc := sales.NewCreateSaleUseCase(&fakeTxRunner{store}, testLogger())

	_, err := uc.Execute(context.Background(), saleWithLines(
		entity.SaleDetail{ProductID: 10, Quantity: 0, UnitPrice: decimal.NewFromInt(100)},
	))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 5, store.inventory[invKey{1, 10}])
}

// La segunda línea no tiene entrada de inventario: la venta entera se revierte,
// incluido el descuento que la primera línea ya había aplicado.
func TestCreateSale_StockEntryMissing_RevierteTodo(t *testing.T) {
	store := newSeededStore()
	store.products[99] = true // el producto existe, su inventario en la sucursal 1 no
	uc := sales.NewCreateSaleUseCase(&fakeTxRunner{store}, testLogger())

	_, err := uc.Execute(context.Background(), saleWithLines(
		entity.SaleDetail{ProductID: 10, Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
		entity.SaleDetail{ProductID: 99, Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
	))

	var stockErr *domain.StockEntryMissingError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, stockErr.BranchID)
	assert.Equal(t, 99, stockErr.ProductID)

	assert.Equal(t, 5, store.inventory[invKey{1, 10}],
		"el descuento de la primera línea debe revertirse")
	assert.Empty(t, store.sales, "la cabecera no debe quedar visible")
	assert.Empty(t, store.details, "ninguna línea debe quedar visible")
}

func TestCreateSale_ReferenciaInexistente(t *testing.T) {
	store := newSeededStore()
	uc := sales.NewCreateSaleUseCase(&fakeTxRunner{store}, testLogger())

	sale := saleWithLines(
		entity.SaleDetail{ProductID: 10, Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
	)
	sale.CustomerID = 999

	_, err := uc.Execute(context.Background(), sale)

	var refErr *domain.ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "customer", refErr.Entity)
	assert.Equal(t, 999, refErr.ID)
	assert.Equal(t, 5, store.inventory[invKey{1, 10}], "nada debe quedar escrito")
}

// Productos repetidos en una misma venta son válidos y sus descuentos se acumulan.
func TestCreateSale_ProductoRepetidoAcumula(t *testing.T) {
	store := newSeededStore()
	store.inventory[invKey{1, 10}] = 10
	uc := sales.NewCreateSaleUseCase(&fakeTxRunner{store}, testLogger())

	_, err := uc.Execute(context.Background(), saleWithLines(
		entity.SaleDetail{ProductID: 10, Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
		entity.SaleDetail{ProductID: 10, Quantity: 3, UnitPrice: decimal.NewFromInt(100)},
	))

	require.NoError(t, err)
	assert.Equal(t, 5, store.inventory[invKey{1, 10}], "10 - 2 - 3 = 5")
	assert.Len(t, store.details, 2)
}

// El subtotal enviado por el caller se respeta tal cual cuando no viene en cero;
// el total de la cabecera no se coteja contra la suma de subtotales.
func TestCreateSale_SubtotalExplicitoSeRespeta(t *testing.T) {
	store := newSeededStore()
	uc := sales.NewCreateSaleUseCase(&fakeTxRunner{store}, testLogger())

	_, err := uc.Execute(context.Background(), saleWithLines(
		entity.SaleDetail{
			ProductID: 10,
			Quantity:  2,
			UnitPrice: decimal.NewFromInt(100),
			Subtotal:  decimal.NewFromInt(180), // con descuento aplicado por el caller
		},
	))

	require.NoError(t, err)
	require.Len(t, store.details, 1)
	assert.True(t, store.details[0].Subtotal.Equal(decimal.NewFromInt(180)))
}

func TestCreateSale_IdsConsecutivos(t *testing.T) {
	store := newSeededStore()
	store.inventory[invKey{1, 10}] = 50
	uc := sales.NewCreateSaleUseCase(&fakeTxRunner{store}, testLogger())

	line := entity.SaleDetail{ProductID: 10, Quantity: 1, UnitPrice: decimal.NewFromInt(100)}
	id1, err1 := uc.Execute(context.Background(), saleWithLines(line))
	id2, err2 := uc.Execute(context.Background(), saleWithLines(line))

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, id1, id2, "cada venta debe recibir un id nuevo")
	assert.Equal(t, 48, store.inventory[invKey{1, 10}])
}
