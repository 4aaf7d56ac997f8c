package entity

// Employee representa un empleado asignado a una sucursal con un rol.
type Employee struct {
	ID                   int
	IdentificationNumber string
	FirstName            string
	MiddleName           string
	LastName1            string
	LastName2            string
	RoleID               int
	BranchID             int
}
