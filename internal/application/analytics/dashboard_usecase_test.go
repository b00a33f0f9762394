package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/analytics"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/infrastructure/memory"
)

// Caso 1: con el almacén vacío todas las métricas son cero.
func TestGetMetrics_AlmacenVacio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewMetricsRepository(memory.New()))

	m, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.True(t, m.MonthlySales.IsZero())
	assert.Zero(t, m.PendingOrders)
	assert.Zero(t, m.ProductsInStock)
	assert.Zero(t, m.ActiveCustomers)
	assert.Zero(t, m.LowStockCount)
	assert.Zero(t, m.OverdueCount)
}

// Caso 2: escenario completo — las seis cifras salen de las colecciones.
// Las ventas del mes solo suman órdenes pagadas con fecha en el mes en curso.
func TestGetMetrics_EscenarioCompleto(t *testing.T) {
	s := memory.New()
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := monthStart.Add(-48 * time.Hour)

	// Ventas: dos pagadas este mes (150000), una pagada el mes pasado, una
	// pendiente y una anulada.
	sales := memory.NewSalesOrderRepository(s)
	for _, o := range []entity.SalesOrder{
		{OrderNumber: "PED-M1", Status: entity.OrderStatusPaid, Total: decimal.NewFromFloat(100000), SaleDate: now},
		{OrderNumber: "PED-M2", Status: entity.OrderStatusPaid, Total: decimal.NewFromFloat(50000), SaleDate: now},
		{OrderNumber: "PED-M3", Status: entity.OrderStatusPaid, Total: decimal.NewFromFloat(999999), SaleDate: lastMonth},
		{OrderNumber: "PED-M4", Status: entity.OrderStatusPending, Total: decimal.NewFromFloat(70000), SaleDate: now},
		{OrderNumber: "PED-M5", Status: entity.OrderStatusCancelled, Total: decimal.NewFromFloat(80000), SaleDate: now},
	} {
		o := o
		require.NoError(t, sales.Create(&o))
	}

	// Inventario: stock 40 + 5, el de stock 5 está bajo mínimo.
	products := memory.NewProductRepository(s)
	require.NoError(t, products.Create(&entity.Product{Name: "A", Price: decimal.NewFromFloat(1000), CurrentStock: 40, MinimumStock: 10, Active: true}))
	require.NoError(t, products.Create(&entity.Product{Name: "B", Price: decimal.NewFromFloat(2500), CurrentStock: 5, MinimumStock: 10, Active: true}))

	// Clientes: dos activos, uno de baja.
	customers := memory.NewCustomerRepository(s)
	for _, name := range []string{"C1", "C2", "C3"} {
		require.NoError(t, customers.Create(&entity.Customer{Name: name, Active: true}))
	}
	_, err := customers.Delete(3)
	require.NoError(t, err)

	// Finanzas: una vencida, una al día.
	finance := memory.NewFinancialRepository(s)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)
	require.NoError(t, finance.Create(&entity.FinancialTransaction{Type: entity.TransactionTypeIncome, Category: "cartera", Amount: decimal.NewFromFloat(10000), DueDate: &yesterday}))
	require.NoError(t, finance.Create(&entity.FinancialTransaction{Type: entity.TransactionTypeIncome, Category: "cartera", Amount: decimal.NewFromFloat(10000), DueDate: &tomorrow}))

	uc := analytics.NewDashboardUseCase(memory.NewMetricsRepository(s))
	m, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.True(t, m.MonthlySales.Equal(decimal.NewFromFloat(150000)),
		"solo suman las pagadas del mes: 100000 + 50000, no %s", m.MonthlySales)
	assert.Equal(t, int64(1), m.PendingOrders)
	assert.Equal(t, int64(45), m.ProductsInStock)
	assert.Equal(t, int64(2), m.ActiveCustomers)
	assert.Equal(t, int64(1), m.LowStockCount)
	assert.Equal(t, int64(1), m.OverdueCount)
}
