package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. El precio es el vigente;
// cada línea de venta guarda su propio snapshot de precio unitario.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  int
	IsActive    bool
}
