package entity

import "github.com/shopspring/decimal"

// DashboardMetrics resumen de seis cifras que se recalcula en cada invocación
// a partir del estado actual de las colecciones (sin caché).
type DashboardMetrics struct {
	MonthlySales    decimal.Decimal // suma de Total de órdenes pagadas del mes calendario en curso
	PendingOrders   int64           // órdenes con status pending
	ProductsInStock int64           // suma de CurrentStock de productos activos
	ActiveCustomers int64           // clientes con Active = true
	LowStockCount   int64           // productos activos con CurrentStock <= MinimumStock
	OverdueCount    int64           // transacciones no pagadas con DueDate vencido
}
