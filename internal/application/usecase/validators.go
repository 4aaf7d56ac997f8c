package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// Validaciones estructurales mínimas por entidad (campos obligatorios).
// Todo lo demás lo vigilan los constraints del motor.

// ValidateBranch exige nombre y ciudad.
func ValidateBranch(b *entity.Branch) error {
	if b.Name == "" || b.City == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// ValidateCategory exige nombre.
func ValidateCategory(c *entity.Category) error {
	if c.Name == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// ValidateCustomer exige identificación, nombre y primer apellido.
func ValidateCustomer(c *entity.Customer) error {
	if c.IdentificationNumber == "" || c.FirstName == "" || c.LastName1 == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// ValidateEmployee exige identificación, nombre y las referencias a rol y sucursal.
func ValidateEmployee(e *entity.Employee) error {
	if e.IdentificationNumber == "" || e.FirstName == "" || e.LastName1 == "" {
		return domain.ErrInvalidInput
	}
	if e.RoleID <= 0 || e.BranchID <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// ValidateProduct exige nombre, categoría y precio no negativo.
func ValidateProduct(p *entity.Product) error {
	if p.Name == "" || p.CategoryID <= 0 {
		return domain.ErrInvalidInput
	}
	if p.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// ValidateRole exige nombre.
func ValidateRole(r *entity.Role) error {
	if r.Name == "" {
		return domain.ErrInvalidInput
	}
	return nil
}
