package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSalesOrderRequest entrada para crear una orden de venta. Subtotal,
// Discount y Total los aporta el llamador; el servidor no los recalcula.
// OrderNumber vacío genera uno automático.
type CreateSalesOrderRequest struct {
	OrderNumber string                       `json:"order_number"`
	CustomerID  *int64                       `json:"customer_id"`
	SaleDate    *time.Time                   `json:"sale_date"`
	Status      string                       `json:"status"` // por defecto pending
	Subtotal    decimal.Decimal              `json:"subtotal"`
	Discount    decimal.Decimal              `json:"discount"`
	Total       decimal.Decimal              `json:"total"`
	Notes       string                       `json:"notes"`
	SellerID    *int64                       `json:"seller_id"`
	Items       []CreateSalesOrderItemInline `json:"items"`
}

// CreateSalesOrderItemInline línea enviada junto con la orden. La creación de
// orden + líneas no es atómica: cada línea es una sentencia independiente.
type CreateSalesOrderItemInline struct {
	ProductID int64           `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}

// CreateSalesOrderItemRequest entrada para añadir una línea a una orden ya
// existente (el order_id viene en la ruta).
type CreateSalesOrderItemRequest struct {
	ProductID int64           `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}

// UpdateSalesOrderRequest entrada para actualización parcial de una orden.
type UpdateSalesOrderRequest struct {
	OrderNumber *string          `json:"order_number"`
	CustomerID  *int64           `json:"customer_id"`
	SaleDate    *time.Time       `json:"sale_date"`
	Status      *string          `json:"status"`
	Subtotal    *decimal.Decimal `json:"subtotal"`
	Discount    *decimal.Decimal `json:"discount"`
	Total       *decimal.Decimal `json:"total"`
	Notes       *string          `json:"notes"`
	SellerID    *int64           `json:"seller_id"`
}

// SalesOrderResponse salida de una orden.
type SalesOrderResponse struct {
	ID          int64                    `json:"id"`
	OrderNumber string                   `json:"order_number"`
	CustomerID  *int64                   `json:"customer_id"`
	SaleDate    time.Time                `json:"sale_date"`
	Status      string                   `json:"status"`
	Subtotal    decimal.Decimal          `json:"subtotal"`
	Discount    decimal.Decimal          `json:"discount"`
	Total       decimal.Decimal          `json:"total"`
	Notes       string                   `json:"notes"`
	SellerID    *int64                   `json:"seller_id"`
	CreatedAt   time.Time                `json:"created_at"`
	Items       []SalesOrderItemResponse `json:"items,omitempty"`
}

// SalesOrderItemResponse salida de una línea.
type SalesOrderItemResponse struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}

// SalesOrderListResponse lista de órdenes (sin líneas).
type SalesOrderListResponse struct {
	Items []SalesOrderResponse `json:"items"`
	Total int                  `json:"total"`
}
