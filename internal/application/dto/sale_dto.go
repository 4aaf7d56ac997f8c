package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// SaleLineRequest una línea de la venta entrante. Subtotal es opcional: si
// viene en cero se calcula cantidad × precio unitario.
type SaleLineRequest struct {
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal,omitempty"`
}

// CreateSaleRequest body para POST /api/v1/sales: cabecera + líneas en orden.
type CreateSaleRequest struct {
	BranchID    int               `json:"branch_id"`
	CustomerID  int               `json:"customer_id"`
	EmployeeID  int               `json:"employee_id"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Details     []SaleLineRequest `json:"details"`
}

// ToEntity convierte el request en la entidad Sale con sus líneas.
func (r CreateSaleRequest) ToEntity() *entity.Sale {
	sale := &entity.Sale{
		TotalAmount: r.TotalAmount,
		BranchID:    r.BranchID,
		CustomerID:  r.CustomerID,
		EmployeeID:  r.EmployeeID,
	}
	for _, l := range r.Details {
		sale.Details = append(sale.Details, entity.SaleDetail{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return sale
}

// CreateSaleResponse respuesta de una venta procesada.
type CreateSaleResponse struct {
	ID          int             `json:"id"`
	SaleDate    time.Time       `json:"sale_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Message     string          `json:"message"`
}

// SaleResponse cabecera de venta para listados.
type SaleResponse struct {
	ID          int             `json:"id"`
	SaleDate    time.Time       `json:"sale_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	BranchID    int             `json:"branch_id"`
	CustomerID  int             `json:"customer_id"`
	EmployeeID  int             `json:"employee_id"`
}

// SaleLineResponse una línea persistida de la venta.
type SaleLineResponse struct {
	SaleID    int             `json:"sale_id"`
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleWithDetailsResponse cabecera + líneas para GET /api/v1/sales/:id.
type SaleWithDetailsResponse struct {
	SaleResponse
	Details []SaleLineResponse `json:"details"`
}

// NewSaleResponse mapea la cabecera a su respuesta HTTP.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		SaleDate:    s.SaleDate,
		TotalAmount: s.TotalAmount,
		BranchID:    s.BranchID,
		CustomerID:  s.CustomerID,
		EmployeeID:  s.EmployeeID,
	}
}

// NewSaleWithDetailsResponse mapea la venta con sus líneas.
func NewSaleWithDetailsResponse(s *entity.Sale) SaleWithDetailsResponse {
	out := SaleWithDetailsResponse{SaleResponse: NewSaleResponse(s)}
	for _, d := range s.Details {
		out.Details = append(out.Details, SaleLineResponse{
			SaleID:    d.SaleID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal,
		})
	}
	return out
}

// SaleLineResponseFromEntity mapea una línea suelta (listados de detailsales).
func SaleLineResponseFromEntity(d *entity.SaleDetail) SaleLineResponse {
	return SaleLineResponse{
		SaleID:    d.SaleID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
		Subtotal:  d.Subtotal,
	}
}
