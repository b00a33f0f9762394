package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

// UpdateCustomerRequest entrada para actualización parcial de un cliente.
type UpdateCustomerRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Document *string `json:"document"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	ZipCode  *string `json:"zip_code"`
	Active   *bool   `json:"active"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Document  string    `json:"document"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListResponse lista de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}
