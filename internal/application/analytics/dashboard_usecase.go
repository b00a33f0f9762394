// Package analytics contiene el caso de uso del dashboard de métricas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// DashboardUseCase construye el resumen de seis métricas del negocio.
//
// Fuente de datos: MetricsRepository (consultas read-only). Cada invocación
// recalcula desde cero; no hay caché.
type DashboardUseCase struct {
	metricsRepo repository.MetricsRepository
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso con el reloj real.
func NewDashboardUseCase(metricsRepo repository.MetricsRepository) *DashboardUseCase {
	return &DashboardUseCase{metricsRepo: metricsRepo, now: time.Now}
}

// GetMetrics construye el DashboardMetricsDTO.
//
// Tres llamadas en paralelo:
//  1. GetSalesMetrics(mes en curso) → MonthlySales + PendingOrders
//  2. GetInventoryMetrics           → ProductsInStock + LowStockCount
//  3. GetFinanceMetrics(ahora)      → ActiveCustomers + OverdueCount
func (uc *DashboardUseCase) GetMetrics(ctx context.Context) (*dto.DashboardMetricsDTO, error) {
	now := uc.now()

	// Mes calendario en curso: día 1 a las 00:00 hasta el instante actual.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type salesResult struct {
		monthly decimal.Decimal
		pending int64
		err     error
	}
	type inventoryResult struct {
		inStock int64
		low     int64
		err     error
	}
	type financeResult struct {
		customers int64
		overdue   int64
		err       error
	}

	salesCh := make(chan salesResult, 1)
	inventoryCh := make(chan inventoryResult, 1)
	financeCh := make(chan financeResult, 1)

	go func() {
		monthly, pending, err := uc.metricsRepo.GetSalesMetrics(ctx, monthStart, now)
		salesCh <- salesResult{monthly, pending, err}
	}()
	go func() {
		inStock, low, err := uc.metricsRepo.GetInventoryMetrics(ctx)
		inventoryCh <- inventoryResult{inStock, low, err}
	}()
	go func() {
		customers, overdue, err := uc.metricsRepo.GetFinanceMetrics(ctx, now)
		financeCh <- financeResult{customers, overdue, err}
	}()

	sales := <-salesCh
	inventory := <-inventoryCh
	finance := <-financeCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de ventas: %w", sales.err)
	}
	if inventory.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de inventario: %w", inventory.err)
	}
	if finance.err != nil {
		return nil, fmt.Errorf("dashboard: métricas financieras: %w", finance.err)
	}

	m := entity.DashboardMetrics{
		MonthlySales:    sales.monthly.Round(2),
		PendingOrders:   sales.pending,
		ProductsInStock: inventory.inStock,
		ActiveCustomers: finance.customers,
		LowStockCount:   inventory.low,
		OverdueCount:    finance.overdue,
	}
	return &dto.DashboardMetricsDTO{
		MonthlySales:    m.MonthlySales,
		PendingOrders:   m.PendingOrders,
		ProductsInStock: m.ProductsInStock,
		ActiveCustomers: m.ActiveCustomers,
		LowStockCount:   m.LowStockCount,
		OverdueCount:    m.OverdueCount,
	}, nil
}
