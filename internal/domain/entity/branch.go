package entity

// Branch representa una sucursal física del supermercado.
type Branch struct {
	ID      int
	Nit     string
	Name    string
	Address string
	Phone   string
	Email   string
	City    string
}
