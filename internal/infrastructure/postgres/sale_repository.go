package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository       = (*SaleRepo)(nil)
	_ repository.SaleDetailRepository = (*SaleDetailRepo)(nil)
)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// GetAll lista las cabeceras de venta, la más reciente primero.
func (r *SaleRepo) GetAll(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT id, sale_date, total_amount, branch_id, customer_id, employee_id
		FROM sales ORDER BY sale_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr("select sales", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.SaleDate, &s.TotalAmount, &s.BranchID, &s.CustomerID, &s.EmployeeID); err != nil {
			return nil, storageErr("scan sale", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("select sales", err)
	}
	return list, nil
}

// GetByID obtiene la cabecera de una venta; (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int) (*entity.Sale, error) {
	query := `
		SELECT id, sale_date, total_amount, branch_id, customer_id, employee_id
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.SaleDate, &s.TotalAmount, &s.BranchID, &s.CustomerID, &s.EmployeeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get sale", err)
	}
	return &s, nil
}

// CreateHeader inserta la cabecera y devuelve el id asignado. Una violación de
// llave foránea se traduce a ReferenceNotFoundError con la entidad y el id
// ofensivos, tomados de la propia cabecera según el constraint violado.
func (r *SaleRepo) CreateHeader(ctx context.Context, sale *entity.Sale) (int, error) {
	query := `
		INSERT INTO sales (sale_date, total_amount, branch_id, customer_id, employee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		sale.SaleDate, sale.TotalAmount, sale.BranchID, sale.CustomerID, sale.EmployeeID,
	).Scan(&sale.ID)
	if err != nil {
		if ent, ok := foreignKeyEntity(err); ok {
			var id int
			switch ent {
			case "branch":
				id = sale.BranchID
			case "customer":
				id = sale.CustomerID
			case "employee":
				id = sale.EmployeeID
			}
			return 0, &domain.ReferenceNotFoundError{Entity: ent, ID: id}
		}
		return 0, storageErr("insert sale", err)
	}
	return sale.ID, nil
}

// SaleDetailRepo implementación de SaleDetailRepository sobre PostgreSQL.
type SaleDetailRepo struct {
	q Querier
}

// NewSaleDetailRepository construye el adaptador de líneas de venta. Pasar pool o tx (Querier).
func NewSaleDetailRepository(q Querier) *SaleDetailRepo {
	return &SaleDetailRepo{q: q}
}

// GetAll devuelve todas las líneas de venta registradas.
func (r *SaleDetailRepo) GetAll(ctx context.Context) ([]*entity.SaleDetail, error) {
	query := `SELECT sale_id, product_id, quantity, unit_price, subtotal FROM sale_details`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr("select sale_details", err)
	}
	defer rows.Close()
	return scanDetailRows(rows)
}

// GetBySale devuelve las líneas de una venta en orden de inserción.
func (r *SaleDetailRepo) GetBySale(ctx context.Context, saleID int) ([]*entity.SaleDetail, error) {
	query := `
		SELECT sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_details WHERE sale_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, storageErr("select sale_details by sale", err)
	}
	defer rows.Close()
	return scanDetailRows(rows)
}

// Create inserta una línea de venta. Un producto inexistente se traduce a
// ReferenceNotFoundError (constraint sale_details_product_id_fkey).
func (r *SaleDetailRepo) Create(ctx context.Context, d *entity.SaleDetail) error {
	query := `
		INSERT INTO sale_details (sale_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, d.SaleID, d.ProductID, d.Quantity, d.UnitPrice, d.Subtotal)
	if err != nil {
		if ent, ok := foreignKeyEntity(err); ok {
			id := d.ProductID
			if ent == "sale" {
				id = d.SaleID
			}
			return &domain.ReferenceNotFoundError{Entity: ent, ID: id}
		}
		return storageErr("insert sale_detail", err)
	}
	return nil
}

func scanDetailRows(rows pgx.Rows) ([]*entity.SaleDetail, error) {
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.SaleID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Subtotal); err != nil {
			return nil, storageErr("scan sale_detail", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("select sale_details", err)
	}
	return list, nil
}
