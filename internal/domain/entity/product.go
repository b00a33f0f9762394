package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidad de medida por defecto para productos.
const DefaultUnit = "UN"

// Product representa un producto del catálogo. El stock se maneja como un par
// de enteros sobre el propio registro (sin kardex de movimientos).
// La baja es lógica (Active = false).
type Product struct {
	ID           int64
	Name         string
	Code         string // código único; vacío si no se asignó
	Description  string
	Price        decimal.Decimal // precio de venta
	Cost         decimal.Decimal // costo de adquisición
	Category     string
	Unit         string // por defecto "UN"
	CurrentStock int64
	MinimumStock int64
	Active       bool
	CreatedAt    time.Time
}

// LowStock indica si el producto está activo y su stock actual no supera el mínimo.
func (p *Product) LowStock() bool {
	return p.Active && p.CurrentStock <= p.MinimumStock
}

// ProductPatch conjunto parcial de campos para actualizar un producto.
type ProductPatch struct {
	Name         *string
	Code         *string
	Description  *string
	Price        *decimal.Decimal
	Cost         *decimal.Decimal
	Category     *string
	Unit         *string
	CurrentStock *int64
	MinimumStock *int64
	Active       *bool
}
