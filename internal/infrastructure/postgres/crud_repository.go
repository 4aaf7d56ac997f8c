package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/supermercado-api/internal/domain"
)

// Mapping describe cómo una entidad de referencia se proyecta a su tabla:
// columnas en orden fijo, destinos de scan y valores de insert/update.
// Con esto un único repositorio genérico reemplaza los nueve repositorios
// casi idénticos que tenía la versión anterior, sin cambiar el comportamiento.
type Mapping[T any] struct {
	Table   string
	Columns []string // columnas sin el id, en el orden de Args
	OrderBy string   // opcional, expresión para ORDER BY en GetAll
	// ID devuelve el id de la entidad.
	ID func(e *T) int
	// Fields devuelve los destinos de scan: &id seguido de las columnas en orden.
	Fields func(e *T) []any
	// Args devuelve los valores de insert/update en el orden de Columns.
	Args func(e *T) []any
}

// CrudRepo implementa repository.Store[T] sobre PostgreSQL (usable con pool o tx).
type CrudRepo[T any] struct {
	q Querier
	m Mapping[T]

	selectAllSQL  string
	selectByIDSQL string
	insertSQL     string
	updateSQL     string
	deleteSQL     string
}

// NewCrudRepo construye el repositorio genérico precomputando el SQL de la tabla.
func NewCrudRepo[T any](q Querier, m Mapping[T]) *CrudRepo[T] {
	cols := "id, " + strings.Join(m.Columns, ", ")

	selectAll := fmt.Sprintf("SELECT %s FROM %s", cols, m.Table)
	if m.OrderBy != "" {
		selectAll += " ORDER BY " + m.OrderBy
	}

	placeholders := make([]string, len(m.Columns))
	assignments := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+2)
	}

	return &CrudRepo[T]{
		q:             q,
		m:             m,
		selectAllSQL:  selectAll,
		selectByIDSQL: fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", cols, m.Table),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
			m.Table, strings.Join(m.Columns, ", "), strings.Join(placeholders, ", ")),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE id = $1",
			m.Table, strings.Join(assignments, ", ")),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE id = $1", m.Table),
	}
}

// GetAll devuelve todos los registros de la tabla.
func (r *CrudRepo[T]) GetAll(ctx context.Context) ([]*T, error) {
	rows, err := r.q.Query(ctx, r.selectAllSQL)
	if err != nil {
		return nil, storageErr("select "+r.m.Table, err)
	}
	defer rows.Close()

	var list []*T
	for rows.Next() {
		var e T
		if err := rows.Scan(r.m.Fields(&e)...); err != nil {
			return nil, storageErr("scan "+r.m.Table, err)
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("select "+r.m.Table, err)
	}
	return list, nil
}

// GetByID obtiene un registro por id; (nil, nil) si no existe.
func (r *CrudRepo[T]) GetByID(ctx context.Context, id int) (*T, error) {
	var e T
	err := r.q.QueryRow(ctx, r.selectByIDSQL, id).Scan(r.m.Fields(&e)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get "+r.m.Table, err)
	}
	return &e, nil
}

// Create inserta el registro y devuelve el id asignado por la base.
func (r *CrudRepo[T]) Create(ctx context.Context, e *T) (int, error) {
	// El primer destino de Fields es &ID: RETURNING id queda escrito en la entidad.
	idDest := r.m.Fields(e)[0]
	if err := r.q.QueryRow(ctx, r.insertSQL, r.m.Args(e)...).Scan(idDest); err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrAlreadyExists
		}
		return 0, storageErr("insert "+r.m.Table, err)
	}
	return r.m.ID(e), nil
}

// Update reemplaza el registro completo por id; domain.ErrNotFound si no existe.
func (r *CrudRepo[T]) Update(ctx context.Context, e *T) error {
	args := append([]any{r.m.ID(e)}, r.m.Args(e)...)
	tag, err := r.q.Exec(ctx, r.updateSQL, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return storageErr("update "+r.m.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el registro por id; domain.ErrNotFound si no existe.
func (r *CrudRepo[T]) Delete(ctx context.Context, id int) error {
	tag, err := r.q.Exec(ctx, r.deleteSQL, id)
	if err != nil {
		return storageErr("delete "+r.m.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
