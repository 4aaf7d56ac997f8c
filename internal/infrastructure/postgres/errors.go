package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/supermercado-api/internal/domain"
)

// Códigos SQLSTATE que el adaptador traduce a errores de dominio typed,
// desacoplando los casos de uso de los números del motor.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// fkConstraintEntity mapea el nombre del constraint de llave foránea (ver
// scripts/schema.sql) a la entidad referenciada que falta. Reemplaza el
// pattern-matching sobre mensajes del motor que hacía la versión anterior.
var fkConstraintEntity = map[string]string{
	"sales_branch_id_fkey":         "branch",
	"sales_customer_id_fkey":       "customer",
	"sales_employee_id_fkey":       "employee",
	"sale_details_sale_id_fkey":    "sale",
	"sale_details_product_id_fkey": "product",
	"inventory_branch_id_fkey":     "branch",
	"inventory_product_id_fkey":    "product",
	"products_category_id_fkey":    "category",
	"employees_role_id_fkey":       "role",
	"employees_branch_id_fkey":     "branch",
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// foreignKeyEntity devuelve la entidad referenciada que no existe cuando err es
// una violación de llave foránea (23503) con constraint conocido.
func foreignKeyEntity(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeForeignKeyViolation {
		return "", false
	}
	entity, ok := fkConstraintEntity[pgErr.ConstraintName]
	return entity, ok
}

// storageErr envuelve un fallo no clasificado conservando el diagnóstico del
// motor para los logs del operador.
func storageErr(op string, err error) error {
	return &domain.StorageError{Op: op, Err: err}
}
