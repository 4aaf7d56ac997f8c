package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// ProductRequest body para crear/actualizar un producto.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int             `json:"category_id"`
	IsActive    bool            `json:"is_active"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int             `json:"category_id"`
	IsActive    bool            `json:"is_active"`
}

// ToEntity convierte el request en entidad (sin id).
func (r ProductRequest) ToEntity() *entity.Product {
	return &entity.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		IsActive:    r.IsActive,
	}
}

// NewProductResponse mapea la entidad a su respuesta HTTP.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		IsActive:    p.IsActive,
	}
}
