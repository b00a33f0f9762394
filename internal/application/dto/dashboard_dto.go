package dto

import "github.com/shopspring/decimal"

// DashboardMetricsDTO respuesta de GET /api/dashboard/metrics.
// Seis cifras recalculadas en cada invocación sobre el estado actual.
type DashboardMetricsDTO struct {
	MonthlySales    decimal.Decimal `json:"monthly_sales"`     // suma de Total de órdenes pagadas del mes en curso
	PendingOrders   int64           `json:"pending_orders"`    // órdenes con status pending
	ProductsInStock int64           `json:"products_in_stock"` // stock total de productos activos
	ActiveCustomers int64           `json:"active_customers"`  // clientes activos
	LowStockCount   int64           `json:"low_stock_count"`   // productos activos con stock <= mínimo
	OverdueCount    int64           `json:"overdue_count"`     // transacciones vencidas sin pagar
}
