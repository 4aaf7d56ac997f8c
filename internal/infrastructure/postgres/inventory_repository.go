package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx). Llave compuesta branch_id + product_id.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetAll devuelve todas las entradas de inventario.
func (r *InventoryRepo) GetAll(ctx context.Context) ([]*entity.Inventory, error) {
	query := `SELECT branch_id, product_id, stock_quantity FROM inventory`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr("select inventory", err)
	}
	defer rows.Close()
	return scanInventoryRows(rows)
}

// Get obtiene la entrada de una pareja (sucursal, producto); (nil, nil) si no existe.
func (r *InventoryRepo) Get(ctx context.Context, branchID, productID int) (*entity.Inventory, error) {
	query := `
		SELECT branch_id, product_id, stock_quantity
		FROM inventory WHERE branch_id = $1 AND product_id = $2`
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, query, branchID, productID).Scan(
		&inv.BranchID, &inv.ProductID, &inv.StockQuantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get inventory", err)
	}
	return &inv, nil
}

// GetByProduct lista el stock de un producto en todas las sucursales.
func (r *InventoryRepo) GetByProduct(ctx context.Context, productID int) ([]*entity.Inventory, error) {
	query := `
		SELECT branch_id, product_id, stock_quantity
		FROM inventory WHERE product_id = $1`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, storageErr("select inventory by product", err)
	}
	defer rows.Close()
	return scanInventoryRows(rows)
}

// Create persiste una entrada nueva; domain.ErrAlreadyExists si la pareja ya existe.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (branch_id, product_id, stock_quantity)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, inv.BranchID, inv.ProductID, inv.StockQuantity)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		if ent, ok := foreignKeyEntity(err); ok {
			id := inv.BranchID
			if ent == "product" {
				id = inv.ProductID
			}
			return &domain.ReferenceNotFoundError{Entity: ent, ID: id}
		}
		return storageErr("insert inventory", err)
	}
	return nil
}

// UpdateQuantity reemplaza la cantidad completa; domain.ErrNotFound si no hay entrada.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, branchID, productID, quantity int) error {
	query := `
		UPDATE inventory SET stock_quantity = $3
		WHERE branch_id = $1 AND product_id = $2`
	tag, err := r.q.Exec(ctx, query, branchID, productID, quantity)
	if err != nil {
		return storageErr("update inventory", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddStock suma delta a la cantidad en un único statement: la fila serializa
// los ajustes concurrentes sobre la misma llave vía el bloqueo de fila del
// motor, sin read-modify-write en dos viajes. domain.ErrNotFound si no hay entrada.
func (r *InventoryRepo) AddStock(ctx context.Context, branchID, productID, delta int) error {
	query := `
		UPDATE inventory SET stock_quantity = stock_quantity + $3
		WHERE branch_id = $1 AND product_id = $2`
	tag, err := r.q.Exec(ctx, query, branchID, productID, delta)
	if err != nil {
		return storageErr("add stock", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la entrada de la pareja; domain.ErrNotFound si no existe.
func (r *InventoryRepo) Delete(ctx context.Context, branchID, productID int) error {
	query := `DELETE FROM inventory WHERE branch_id = $1 AND product_id = $2`
	tag, err := r.q.Exec(ctx, query, branchID, productID)
	if err != nil {
		return storageErr("delete inventory", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInventoryRows(rows pgx.Rows) ([]*entity.Inventory, error) {
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.BranchID, &inv.ProductID, &inv.StockQuantity); err != nil {
			return nil, storageErr("scan inventory", err)
		}
		list = append(list, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("select inventory", err)
	}
	return list, nil
}
