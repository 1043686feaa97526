package entity

// Supplier es un proveedor registrado.
type Supplier struct {
	ID      int64
	Name    string
	Contact string
}
