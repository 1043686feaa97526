package entity

// Customer es un cliente registrado. Registro independiente: no se exige
// relación con ventas (el nombre del comprador en Sale es texto libre).
type Customer struct {
	ID      int64
	Name    string
	Contact string
}
