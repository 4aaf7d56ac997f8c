package dto

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// CustomerRequest body para crear/actualizar un cliente.
type CustomerRequest struct {
	IdentificationNumber string `json:"identification_number"`
	FirstName            string `json:"first_name"`
	MiddleName           string `json:"middle_name,omitempty"`
	LastName1            string `json:"last_name1"`
	LastName2            string `json:"last_name2,omitempty"`
	Email                string `json:"email,omitempty"`
	Phone                string `json:"phone,omitempty"`
	Address              string `json:"address,omitempty"`
}

// CustomerResponse representación HTTP de un cliente.
type CustomerResponse struct {
	ID                   int    `json:"id"`
	IdentificationNumber string `json:"identification_number"`
	FirstName            string `json:"first_name"`
	MiddleName           string `json:"middle_name,omitempty"`
	LastName1            string `json:"last_name1"`
	LastName2            string `json:"last_name2,omitempty"`
	Email                string `json:"email,omitempty"`
	Phone                string `json:"phone,omitempty"`
	Address              string `json:"address,omitempty"`
}

// ToEntity convierte el request en entidad (sin id).
func (r CustomerRequest) ToEntity() *entity.Customer {
	return &entity.Customer{
		IdentificationNumber: r.IdentificationNumber,
		FirstName:            r.FirstName,
		MiddleName:           r.MiddleName,
		LastName1:            r.LastName1,
		LastName2:            r.LastName2,
		Email:                r.Email,
		Phone:                r.Phone,
		Address:              r.Address,
	}
}

// NewCustomerResponse mapea la entidad a su respuesta HTTP.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                   c.ID,
		IdentificationNumber: c.IdentificationNumber,
		FirstName:            c.FirstName,
		MiddleName:           c.MiddleName,
		LastName1:            c.LastName1,
		LastName2:            c.LastName2,
		Email:                c.Email,
		Phone:                c.Phone,
		Address:              c.Address,
	}
}
