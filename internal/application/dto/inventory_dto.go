package dto

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// CreateInventoryRequest body para POST /api/v1/inventory.
// La creación es explícita y falla si la pareja (sucursal, producto) ya existe.
type CreateInventoryRequest struct {
	BranchID      int `json:"branch_id"`
	ProductID     int `json:"product_id"`
	StockQuantity int `json:"stock_quantity"`
}

// UpdateQuantityRequest body para PUT .../inventory/:branchId/:productId (reemplazo total).
type UpdateQuantityRequest struct {
	StockQuantity int `json:"stock_quantity"`
}

// AddStockRequest body para PATCH .../stock: ajuste por delta (positivo o negativo).
type AddStockRequest struct {
	Quantity int `json:"quantity"`
}

// InventoryResponse representación HTTP de una entrada de inventario.
type InventoryResponse struct {
	BranchID      int `json:"branch_id"`
	ProductID     int `json:"product_id"`
	StockQuantity int `json:"stock_quantity"`
}

// NewInventoryResponse mapea la entidad a su respuesta HTTP.
func NewInventoryResponse(inv *entity.Inventory) InventoryResponse {
	return InventoryResponse{
		BranchID:      inv.BranchID,
		ProductID:     inv.ProductID,
		StockQuantity: inv.StockQuantity,
	}
}
