package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// SalesOrder representa la cabecera de una venta. Subtotal, Discount y Total
// los aporta el llamador; el repositorio no los recalcula a partir de las líneas.
type SalesOrder struct {
	ID          int64
	OrderNumber string
	CustomerID  *int64 // nil = venta sin cliente asociado
	SaleDate    time.Time
	Status      string // pending, paid, cancelled
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
	Notes       string
	SellerID    *int64 // referencia a User; nil si no aplica
	CreatedAt   time.Time
}

// SalesOrderItem representa una línea de una orden de venta.
// Total es el importe de la línea aportado por el llamador.
type SalesOrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
}

// SalesOrderPatch conjunto parcial de campos para actualizar una orden.
type SalesOrderPatch struct {
	OrderNumber *string
	CustomerID  *int64
	SaleDate    *time.Time
	Status      *string
	Subtotal    *decimal.Decimal
	Discount    *decimal.Decimal
	Total       *decimal.Decimal
	Notes       *string
	SellerID    *int64
}

// SalesOrderItemPatch conjunto parcial de campos para actualizar una línea.
type SalesOrderItemPatch struct {
	Quantity  *decimal.Decimal
	UnitPrice *decimal.Decimal
	Discount  *decimal.Decimal
	Total     *decimal.Decimal
}
