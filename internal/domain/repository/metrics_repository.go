package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MetricsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only y recalculan en cada llamada; las seis
// cifras se agrupan en tres lecturas para que el caso de uso pueda
// paralelizarlas.
type MetricsRepository interface {
	// GetSalesMetrics devuelve la suma de Total de órdenes pagadas con
	// SaleDate dentro de [start, end] y el conteo de órdenes pendientes
	// (este último sin filtrar por fecha).
	GetSalesMetrics(ctx context.Context, start, end time.Time) (monthlySales decimal.Decimal, pendingOrders int64, err error)

	// GetInventoryMetrics devuelve la suma de CurrentStock de productos
	// activos y el conteo de productos activos con stock bajo.
	GetInventoryMetrics(ctx context.Context) (productsInStock, lowStockCount int64, err error)

	// GetFinanceMetrics devuelve el conteo de clientes activos y el de
	// transacciones vencidas (status != paid y DueDate < now).
	GetFinanceMetrics(ctx context.Context, now time.Time) (activeCustomers, overdueCount int64, err error)
}
