package repository

import "context"

// Store es el puerto genérico de persistencia para entidades de referencia con
// id entero asignado por la base (Branch, Category, Customer, Employee, Product, Role).
// Los nueve repositorios casi idénticos del dominio se unifican detrás de este
// contrato; las entidades con llave compuesta (Inventory, SaleDetail) y la venta
// transaccional tienen puertos propios.
//
// GetByID devuelve (nil, nil) cuando el registro no existe; el caso de uso lo
// traduce a domain.ErrNotFound. Update y Delete devuelven domain.ErrNotFound si
// el id no existe. Update reemplaza el registro completo; dos updates
// concurrentes sobre el mismo id no se detectan (gana el último).
type Store[T any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, e *T) (int, error)
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id int) error
}
