package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

// MetricsRepo implementación en memoria del puerto MetricsRepository.
// Recorre las colecciones completas en cada llamada; aceptable para los
// volúmenes de demo y test.
type MetricsRepo struct {
	s *Store
}

// NewMetricsRepository construye el adaptador sobre el Store dado.
func NewMetricsRepository(s *Store) *MetricsRepo {
	return &MetricsRepo{s: s}
}

// GetSalesMetrics suma el Total de órdenes pagadas con SaleDate en el rango y
// cuenta las pendientes.
func (r *MetricsRepo) GetSalesMetrics(_ context.Context, start, end time.Time) (decimal.Decimal, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	monthly := decimal.Zero
	var pending int64
	for _, o := range r.s.orders {
		if o.Status == entity.OrderStatusPending {
			pending++
		}
		if o.Status != entity.OrderStatusPaid {
			continue
		}
		if o.SaleDate.Before(start) || o.SaleDate.After(end) {
			continue
		}
		monthly = monthly.Add(o.Total)
	}
	return monthly, pending, nil
}

// GetInventoryMetrics suma el stock de productos activos y cuenta los de
// stock bajo.
func (r *MetricsRepo) GetInventoryMetrics(_ context.Context) (int64, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var inStock, low int64
	for _, p := range r.s.products {
		if !p.Active {
			continue
		}
		inStock += p.CurrentStock
		if p.CurrentStock <= p.MinimumStock {
			low++
		}
	}
	return inStock, low, nil
}

// GetFinanceMetrics cuenta clientes activos y transacciones vencidas.
func (r *MetricsRepo) GetFinanceMetrics(_ context.Context, now time.Time) (int64, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var active, overdue int64
	for _, c := range r.s.customers {
		if c.Active {
			active++
		}
	}
	for _, t := range r.s.transactions {
		if t.Overdue(now) {
			overdue++
		}
	}
	return active, overdue, nil
}
