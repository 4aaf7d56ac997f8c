package entity

// Customer representa un cliente del supermercado.
type Customer struct {
	ID                   int
	IdentificationNumber string // cédula o NIT
	FirstName            string
	MiddleName           string
	LastName1            string
	LastName2            string
	Email                string
	Phone                string
	Address              string
}
