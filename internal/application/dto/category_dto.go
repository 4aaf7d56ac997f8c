package dto

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// CategoryRequest body para crear/actualizar una categoría.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryResponse representación HTTP de una categoría.
type CategoryResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ToEntity convierte el request en entidad (sin id).
func (r CategoryRequest) ToEntity() *entity.Category {
	return &entity.Category{Name: r.Name, Description: r.Description}
}

// NewCategoryResponse mapea la entidad a su respuesta HTTP.
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}
