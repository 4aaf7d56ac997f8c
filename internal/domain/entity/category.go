package entity

// Category agrupa productos por tipo (bebidas, lácteos, aseo, ...).
type Category struct {
	ID          int
	Name        string
	Description string
}
