package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos y estados de una transacción financiera.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	TransactionStatusPending = "pending"
	TransactionStatusPaid    = "paid"
	TransactionStatusOverdue = "overdue"
)

// FinancialTransaction representa un movimiento del libro de caja (entrada o
// salida). El estado "overdue" se deriva en consulta: status distinto de paid
// y DueDate anterior al momento actual; no se materializa en el registro.
type FinancialTransaction struct {
	ID          int64
	Type        string // income, expense
	Category    string
	Description string
	Amount      decimal.Decimal
	DueDate     *time.Time
	PaymentDate *time.Time
	Status      string // pending, paid, overdue
	OrderID     *int64 // referencia a SalesOrder; nil si no aplica
	CustomerID  *int64
	CreatedAt   time.Time
}

// Overdue indica si la transacción está vencida respecto a now.
func (t *FinancialTransaction) Overdue(now time.Time) bool {
	return t.Status != TransactionStatusPaid && t.DueDate != nil && t.DueDate.Before(now)
}

// FinancialTransactionPatch conjunto parcial de campos para actualizar.
type FinancialTransactionPatch struct {
	Type        *string
	Category    *string
	Description *string
	Amount      *decimal.Decimal
	DueDate     *time.Time
	PaymentDate *time.Time
	Status      *string
	OrderID     *int64
	CustomerID  *int64
}
