package dto

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// EmployeeRequest body para crear/actualizar un empleado.
type EmployeeRequest struct {
	IdentificationNumber string `json:"identification_number"`
	FirstName            string `json:"first_name"`
	MiddleName           string `json:"middle_name,omitempty"`
	LastName1            string `json:"last_name1"`
	LastName2            string `json:"last_name2,omitempty"`
	RoleID               int    `json:"role_id"`
	BranchID             int    `json:"branch_id"`
}

// EmployeeResponse representación HTTP de un empleado.
type EmployeeResponse struct {
	ID                   int    `json:"id"`
	IdentificationNumber string `json:"identification_number"`
	FirstName            string `json:"first_name"`
	MiddleName           string `json:"middle_name,omitempty"`
	LastName1            string `json:"last_name1"`
	LastName2            string `json:"last_name2,omitempty"`
	RoleID               int    `json:"role_id"`
	BranchID             int    `json:"branch_id"`
}

// ToEntity convierte el request en entidad (sin id).
func (r EmployeeRequest) ToEntity() *entity.Employee {
	return &entity.Employee{
		IdentificationNumber: r.IdentificationNumber,
		FirstName:            r.FirstName,
		MiddleName:           r.MiddleName,
		LastName1:            r.LastName1,
		LastName2:            r.LastName2,
		RoleID:               r.RoleID,
		BranchID:             r.BranchID,
	}
}

// NewEmployeeResponse mapea la entidad a su respuesta HTTP.
func NewEmployeeResponse(e *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                   e.ID,
		IdentificationNumber: e.IdentificationNumber,
		FirstName:            e.FirstName,
		MiddleName:           e.MiddleName,
		LastName1:            e.LastName1,
		LastName2:            e.LastName2,
		RoleID:               e.RoleID,
		BranchID:             e.BranchID,
	}
}
