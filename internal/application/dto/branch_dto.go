package dto

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// BranchRequest body para crear/actualizar una sucursal.
type BranchRequest struct {
	Nit     string `json:"nit"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	City    string `json:"city"`
}

// BranchResponse representación HTTP de una sucursal.
type BranchResponse struct {
	ID      int    `json:"id"`
	Nit     string `json:"nit"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	City    string `json:"city"`
}

// ToEntity convierte el request en entidad (sin id).
func (r BranchRequest) ToEntity() *entity.Branch {
	return &entity.Branch{
		Nit:     r.Nit,
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		City:    r.City,
	}
}

// NewBranchResponse mapea la entidad a su respuesta HTTP.
func NewBranchResponse(b *entity.Branch) BranchResponse {
	return BranchResponse{
		ID:      b.ID,
		Nit:     b.Nit,
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
		Email:   b.Email,
		City:    b.City,
	}
}
