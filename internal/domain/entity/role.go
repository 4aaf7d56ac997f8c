package entity

// Role representa el cargo de un empleado (cajero, supervisor, ...).
type Role struct {
	ID          int
	Name        string
	Description string
}
