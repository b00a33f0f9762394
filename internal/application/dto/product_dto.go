package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string           `json:"name" validate:"required,min=1,max=200"`
	Code         string           `json:"code" validate:"omitempty,max=100"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price" validate:"required"`
	Cost         *decimal.Decimal `json:"cost"`
	Category     string           `json:"category"`
	Unit         string           `json:"unit"` // por defecto "UN"
	CurrentStock int64            `json:"current_stock"`
	MinimumStock int64            `json:"minimum_stock"`
}

// UpdateProductRequest entrada para actualización parcial de un producto.
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Code         *string          `json:"code" validate:"omitempty,max=100"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Cost         *decimal.Decimal `json:"cost"`
	Category     *string          `json:"category"`
	Unit         *string          `json:"unit"`
	CurrentStock *int64           `json:"current_stock"`
	MinimumStock *int64           `json:"minimum_stock"`
	Active       *bool            `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	CurrentStock int64           `json:"current_stock"`
	MinimumStock int64           `json:"minimum_stock"`
	LowStock     bool            `json:"low_stock"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
