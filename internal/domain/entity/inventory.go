package entity

// Inventory representa el stock de un producto en una sucursal.
// Llave compuesta: BranchID + ProductID (exactamente una fila por pareja).
type Inventory struct {
	BranchID      int
	ProductID     int
	StockQuantity int
}
