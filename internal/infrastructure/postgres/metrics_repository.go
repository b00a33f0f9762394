package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

// MetricsRepo implementación read-only del puerto MetricsRepository sobre
// PostgreSQL. Cada lectura es un escaneo agregado; sin caché.
type MetricsRepo struct {
	q Querier
}

// NewMetricsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMetricsRepository(q Querier) *MetricsRepo {
	return &MetricsRepo{q: q}
}

// GetSalesMetrics suma el total de órdenes pagadas en el rango y cuenta las
// pendientes. COALESCE devuelve cero cuando no hay órdenes en el período.
func (r *MetricsRepo) GetSalesMetrics(ctx context.Context, start, end time.Time) (decimal.Decimal, int64, error) {
	var monthly decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0)
		FROM sales_orders
		WHERE status = 'paid' AND sale_date BETWEEN $1 AND $2`,
		start, end,
	).Scan(&monthly)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("metrics: ventas del mes: %w", err)
	}

	var pending int64
	err = r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM sales_orders WHERE status = 'pending'`,
	).Scan(&pending)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("metrics: órdenes pendientes: %w", err)
	}
	return monthly, pending, nil
}

// GetInventoryMetrics suma el stock de productos activos y cuenta los de
// stock bajo en una sola consulta.
func (r *MetricsRepo) GetInventoryMetrics(ctx context.Context) (int64, int64, error) {
	var inStock, low int64
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(current_stock), 0),
		       COUNT(*) FILTER (WHERE current_stock <= minimum_stock)
		FROM products
		WHERE active`,
	).Scan(&inStock, &low)
	if err != nil {
		return 0, 0, fmt.Errorf("metrics: inventario: %w", err)
	}
	return inStock, low, nil
}

// GetFinanceMetrics cuenta clientes activos y transacciones vencidas
// (status != paid y due_date estrictamente anterior a now).
func (r *MetricsRepo) GetFinanceMetrics(ctx context.Context, now time.Time) (int64, int64, error) {
	var active int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE active`,
	).Scan(&active)
	if err != nil {
		return 0, 0, fmt.Errorf("metrics: clientes activos: %w", err)
	}

	var overdue int64
	err = r.q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM financial_transactions
		WHERE status <> 'paid' AND due_date IS NOT NULL AND due_date < $1`,
		now,
	).Scan(&overdue)
	if err != nil {
		return 0, 0, fmt.Errorf("metrics: vencidas: %w", err)
	}
	return active, overdue, nil
}
