package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

func TestForeignKeyEntity(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantEntity string
		wantOK     bool
	}{
		{
			name:       "venta con cliente inexistente",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "sales_customer_id_fkey"},
			wantEntity: "customer",
			wantOK:     true,
		},
		{
			name:       "línea con producto inexistente",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "sale_details_product_id_fkey"},
			wantEntity: "product",
			wantOK:     true,
		},
		{
			name:       "error envuelto también se clasifica",
			err:        fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: "employees_role_id_fkey"}),
			wantEntity: "role",
			wantOK:     true,
		},
		{
			name:   "constraint desconocido no se clasifica",
			err:    &pgconn.PgError{Code: "23503", ConstraintName: "otra_fkey"},
			wantOK: false,
		},
		{
			name:   "otro código SQLSTATE no se clasifica",
			err:    &pgconn.PgError{Code: "23505", ConstraintName: "sales_customer_id_fkey"},
			wantOK: false,
		},
		{
			name:   "error ajeno al motor",
			err:    errors.New("conexión cerrada"),
			wantOK: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := foreignKeyEntity(tc.err)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantEntity, got)
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
}

func TestStorageErrConservaLaCausa(t *testing.T) {
	cause := errors.New("broken pipe")
	err := storageErr("insert sales", cause)

	var stErr *domain.StorageError
	assert.ErrorAs(t, err, &stErr)
	assert.Equal(t, "insert sales", stErr.Op)
	assert.ErrorIs(t, err, cause)
}

// El SQL precomputado del repositorio genérico debe coincidir con el esquema.
func TestNewCrudRepo_SQL(t *testing.T) {
	repo := NewCrudRepo(nil, Mapping[entity.Category]{
		Table:   "categories",
		Columns: []string{"name", "description"},
		OrderBy: "name",
		ID:      func(e *entity.Category) int { return e.ID },
		Fields:  func(e *entity.Category) []any { return []any{&e.ID, &e.Name, &e.Description} },
		Args:    func(e *entity.Category) []any { return []any{e.Name, e.Description} },
	})

	assert.Equal(t, "SELECT id, name, description FROM categories ORDER BY name", repo.selectAllSQL)
	assert.Equal(t, "SELECT id, name, description FROM categories WHERE id = $1", repo.selectByIDSQL)
	assert.Equal(t, "INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id", repo.insertSQL)
	assert.Equal(t, "UPDATE categories SET name = $2, description = $3 WHERE id = $1", repo.updateSQL)
	assert.Equal(t, "DELETE FROM categories WHERE id = $1", repo.deleteSQL)
}

// Cada constraint del mapa debe apuntar a una entidad conocida del dominio.
func TestFkConstraintEntity_Completo(t *testing.T) {
	known := map[string]bool{
		"branch": true, "customer": true, "employee": true,
		"sale": true, "product": true, "category": true, "role": true,
	}
	for constraint, ent := range fkConstraintEntity {
		assert.Truef(t, known[ent], "constraint %s apunta a entidad desconocida %q", constraint, ent)
	}
}
