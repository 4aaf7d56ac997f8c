package postgres

import (
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var (
	_ repository.Store[entity.Branch]   = (*CrudRepo[entity.Branch])(nil)
	_ repository.Store[entity.Category] = (*CrudRepo[entity.Category])(nil)
	_ repository.Store[entity.Customer] = (*CrudRepo[entity.Customer])(nil)
	_ repository.Store[entity.Employee] = (*CrudRepo[entity.Employee])(nil)
	_ repository.Store[entity.Product]  = (*CrudRepo[entity.Product])(nil)
	_ repository.Store[entity.Role]     = (*CrudRepo[entity.Role])(nil)
)

// NewBranchRepository construye el adaptador de sucursales. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *CrudRepo[entity.Branch] {
	return NewCrudRepo(q, Mapping[entity.Branch]{
		Table:   "branches",
		Columns: []string{"nit", "name", "address", "phone", "email", "city"},
		ID:      func(b *entity.Branch) int { return b.ID },
		Fields: func(b *entity.Branch) []any {
			return []any{&b.ID, &b.Nit, &b.Name, &b.Address, &b.Phone, &b.Email, &b.City}
		},
		Args: func(b *entity.Branch) []any {
			return []any{b.Nit, b.Name, b.Address, b.Phone, b.Email, b.City}
		},
	})
}

// NewCategoryRepository construye el adaptador de categorías.
func NewCategoryRepository(q Querier) *CrudRepo[entity.Category] {
	return NewCrudRepo(q, Mapping[entity.Category]{
		Table:   "categories",
		Columns: []string{"name", "description"},
		ID:      func(c *entity.Category) int { return c.ID },
		Fields: func(c *entity.Category) []any {
			return []any{&c.ID, &c.Name, &c.Description}
		},
		Args: func(c *entity.Category) []any {
			return []any{c.Name, c.Description}
		},
	})
}

// NewCustomerRepository construye el adaptador de clientes.
func NewCustomerRepository(q Querier) *CrudRepo[entity.Customer] {
	return NewCrudRepo(q, Mapping[entity.Customer]{
		Table: "customers",
		Columns: []string{
			"identification_number", "first_name", "middle_name",
			"last_name1", "last_name2", "email", "phone", "address",
		},
		ID: func(c *entity.Customer) int { return c.ID },
		Fields: func(c *entity.Customer) []any {
			return []any{
				&c.ID, &c.IdentificationNumber, &c.FirstName, &c.MiddleName,
				&c.LastName1, &c.LastName2, &c.Email, &c.Phone, &c.Address,
			}
		},
		Args: func(c *entity.Customer) []any {
			return []any{
				c.IdentificationNumber, c.FirstName, c.MiddleName,
				c.LastName1, c.LastName2, c.Email, c.Phone, c.Address,
			}
		},
	})
}

// NewEmployeeRepository construye el adaptador de empleados.
func NewEmployeeRepository(q Querier) *CrudRepo[entity.Employee] {
	return NewCrudRepo(q, Mapping[entity.Employee]{
		Table: "employees",
		Columns: []string{
			"identification_number", "first_name", "middle_name",
			"last_name1", "last_name2", "role_id", "branch_id",
		},
		ID: func(e *entity.Employee) int { return e.ID },
		Fields: func(e *entity.Employee) []any {
			return []any{
				&e.ID, &e.IdentificationNumber, &e.FirstName, &e.MiddleName,
				&e.LastName1, &e.LastName2, &e.RoleID, &e.BranchID,
			}
		},
		Args: func(e *entity.Employee) []any {
			return []any{
				e.IdentificationNumber, e.FirstName, e.MiddleName,
				e.LastName1, e.LastName2, e.RoleID, e.BranchID,
			}
		},
	})
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(q Querier) *CrudRepo[entity.Product] {
	return NewCrudRepo(q, Mapping[entity.Product]{
		Table:   "products",
		Columns: []string{"name", "description", "price", "category_id", "is_active"},
		OrderBy: "name",
		ID:      func(p *entity.Product) int { return p.ID },
		Fields: func(p *entity.Product) []any {
			return []any{&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.IsActive}
		},
		Args: func(p *entity.Product) []any {
			return []any{p.Name, p.Description, p.Price, p.CategoryID, p.IsActive}
		},
	})
}

// NewRoleRepository construye el adaptador de roles.
func NewRoleRepository(q Querier) *CrudRepo[entity.Role] {
	return NewCrudRepo(q, Mapping[entity.Role]{
		Table:   "roles",
		Columns: []string{"name", "description"},
		ID:      func(r *entity.Role) int { return r.ID },
		Fields: func(r *entity.Role) []any {
			return []any{&r.ID, &r.Name, &r.Description}
		},
		Args: func(r *entity.Role) []any {
			return []any{r.Name, r.Description}
		},
	})
}
