package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es la cabecera de una venta. Las líneas viajan en Details en el orden
// en que el cliente las envió; productos repetidos en una misma venta son
// válidos y sus descuentos de stock se acumulan.
type Sale struct {
	ID          int
	SaleDate    time.Time
	TotalAmount decimal.Decimal
	BranchID    int
	CustomerID  int
	EmployeeID  int
	Details     []SaleDetail
}

// SaleDetail es una línea de venta: producto, cantidad y snapshot del precio
// unitario al momento de la venta (independiente de cambios posteriores del producto).
type SaleDetail struct {
	SaleID    int
	ProductID int
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
