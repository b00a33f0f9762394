package entity

import "time"

// Customer representa un cliente de la empresa.
// La baja es lógica: Active pasa a false y el registro nunca se elimina.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Document  string // NIT, cédula o documento fiscal equivalente
	Address   string
	City      string
	State     string
	ZipCode   string
	Active    bool
	CreatedAt time.Time
}

// CustomerPatch conjunto parcial de campos para actualizar un cliente.
type CustomerPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Document *string
	Address  *string
	City     *string
	State    *string
	ZipCode  *string
	Active   *bool
}
