package usecase

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// CrudUseCase casos de uso de paso directo para una entidad de referencia.
// La lógica de negocio de estas entidades es nula: validar lo mínimo, delegar
// al Store y traducir el (nil, nil) del repo a ErrNotFound.
type CrudUseCase[T any] struct {
	store    repository.Store[T]
	validate func(e *T) error // opcional
}

// NewCrudUseCase construye el caso de uso. validate puede ser nil.
func NewCrudUseCase[T any](store repository.Store[T], validate func(e *T) error) *CrudUseCase[T] {
	return &CrudUseCase[T]{store: store, validate: validate}
}

// GetAll lista todos los registros.
func (uc *CrudUseCase[T]) GetAll(ctx context.Context) ([]*T, error) {
	return uc.store.GetAll(ctx)
}

// GetByID obtiene un registro; domain.ErrNotFound si no existe.
func (uc *CrudUseCase[T]) GetByID(ctx context.Context, id int) (*T, error) {
	e, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// Create valida y persiste; devuelve la entidad con el id asignado.
func (uc *CrudUseCase[T]) Create(ctx context.Context, e *T) (*T, error) {
	if uc.validate != nil {
		if err := uc.validate(e); err != nil {
			return nil, err
		}
	}
	if _, err := uc.store.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update reemplaza el registro completo por id.
func (uc *CrudUseCase[T]) Update(ctx context.Context, e *T) (*T, error) {
	if uc.validate != nil {
		if err := uc.validate(e); err != nil {
			return nil, err
		}
	}
	if err := uc.store.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete elimina el registro por id.
func (uc *CrudUseCase[T]) Delete(ctx context.Context, id int) error {
	return uc.store.Delete(ctx, id)
}
