// Seeder de datos demo: inserta categorías, roles, sucursales, clientes,
// empleados, productos e inventario inicial solo cuando la tabla está vacía.
// Uso: go run ./cmd/seed (lee la misma configuración que cmd/api).
package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/infrastructure/postgres"
	"github.com/jhoicas/supermercado-api/pkg/config"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := seed(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().Msg("datos demo listos")
}

func seed(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	type step struct {
		table  string
		insert string
		args   []any
	}

	steps := []step{
		{
			table: "categories",
			insert: `INSERT INTO categories (name, description) VALUES
				('Bebidas', ''), ('Lácteos', ''), ('Panadería', ''),
				('Carnes', ''), ('Verduras', ''), ('Aseo', '')`,
		},
		{
			table: "roles",
			insert: `INSERT INTO roles (name, description) VALUES
				('Administrador', ''), ('Cajero', ''), ('Supervisor', ''), ('Repartidor', '')`,
		},
		{
			table: "branches",
			insert: `INSERT INTO branches (nit, name, address, phone, email, city) VALUES
				('900100200-1', 'Sucursal Norte', 'Calle 10 #5-20', '6015550101', 'norte@supermercado.co', 'Bogotá'),
				('900100200-2', 'Sucursal Sur', 'Carrera 15 #8-30', '6015550102', 'sur@supermercado.co', 'Bogotá')`,
		},
		{
			table: "customers",
			insert: `INSERT INTO customers
				(identification_number, first_name, middle_name, last_name1, last_name2, email, phone, address) VALUES
				('1020304050', 'Juan', '', 'Pérez', '', 'juan@example.com', '3001112233', 'Calle 1 #2-3'),
				('1020304051', 'Ana', 'María', 'Gómez', '', 'ana@example.com', '3001112234', 'Calle 4 #5-6')`,
		},
		{
			table: "employees",
			insert: `INSERT INTO employees
				(identification_number, first_name, middle_name, last_name1, last_name2, role_id, branch_id) VALUES
				('79500600', 'Carlos', '', 'Ruiz', '', 2, 1),
				('52800900', 'Marcela', '', 'Torres', 'López', 3, 2)`,
		},
		{
			table: "products",
			insert: `INSERT INTO products (name, description, price, category_id, is_active) VALUES
				('Gaseosa 1.5L', 'Bebida gaseosa familiar', $1, 1, true),
				('Leche entera 1L', 'Leche entera pasteurizada', $2, 2, true),
				('Pan tajado', 'Pan blanco tajado 450g', $3, 3, true)`,
			args: []any{
				decimal.NewFromFloat(5500),
				decimal.NewFromFloat(4200),
				decimal.NewFromFloat(6800),
			},
		},
		{
			table: "inventory",
			insert: `INSERT INTO inventory (branch_id, product_id, stock_quantity) VALUES
				(1, 1, 100), (1, 2, 80), (1, 3, 50),
				(2, 1, 60), (2, 2, 40)`,
		},
	}

	for _, s := range steps {
		var count int
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+s.table).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			log.Info().Str("table", s.table).Int("rows", count).Msg("tabla con datos, se omite")
			continue
		}
		if _, err := pool.Exec(ctx, s.insert, s.args...); err != nil {
			return err
		}
		log.Info().Str("table", s.table).Msg("datos insertados")
	}
	return nil
}
