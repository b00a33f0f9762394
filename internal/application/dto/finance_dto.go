package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para crear una transacción financiera.
type CreateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,oneof=income expense"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	DueDate     *time.Time      `json:"due_date"`
	PaymentDate *time.Time      `json:"payment_date"`
	Status      string          `json:"status"` // por defecto pending
	OrderID     *int64          `json:"order_id"`
	CustomerID  *int64          `json:"customer_id"`
}

// UpdateTransactionRequest entrada para actualización parcial.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type" validate:"omitempty,oneof=income expense"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *time.Time       `json:"due_date"`
	PaymentDate *time.Time       `json:"payment_date"`
	Status      *string          `json:"status"`
	OrderID     *int64           `json:"order_id"`
	CustomerID  *int64           `json:"customer_id"`
}

// TransactionResponse salida de una transacción. Overdue se deriva en el
// momento de la consulta, no se persiste.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     *time.Time      `json:"due_date"`
	PaymentDate *time.Time      `json:"payment_date"`
	Status      string          `json:"status"`
	Overdue     bool            `json:"overdue"`
	OrderID     *int64          `json:"order_id"`
	CustomerID  *int64          `json:"customer_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionListResponse lista de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}
