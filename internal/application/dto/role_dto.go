package dto

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// RoleRequest body para crear/actualizar un rol.
type RoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RoleResponse representación HTTP de un rol.
type RoleResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ToEntity convierte el request en entidad (sin id).
func (r RoleRequest) ToEntity() *entity.Role {
	return &entity.Role{Name: r.Name, Description: r.Description}
}

// NewRoleResponse mapea la entidad a su respuesta HTTP.
func NewRoleResponse(ro *entity.Role) RoleResponse {
	return RoleResponse{ID: ro.ID, Name: ro.Name, Description: ro.Description}
}
