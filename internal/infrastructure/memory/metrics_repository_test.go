package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/infrastructure/memory"
)

// seedOrder crea una orden con el estado, total y fecha dados.
func seedOrder(t *testing.T, s *memory.Store, status string, total float64, saleDate time.Time) {
	t.Helper()
	repo := memory.NewSalesOrderRepository(s)
	require.NoError(t, repo.Create(&entity.SalesOrder{
		OrderNumber: "PED-" + saleDate.Format("150405.000") + status,
		Status:      status,
		Total:       decimal.NewFromFloat(total),
		SaleDate:    saleDate,
	}))
}

// Caso 1: las ventas del mes solo suman órdenes pagadas dentro del rango;
// pendientes y anuladas no cuentan aunque caigan en el mes.
func TestGetSalesMetrics_SoloPagadasDelRango(t *testing.T) {
	s := memory.New()
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	outOfRange := monthStart.Add(-48 * time.Hour) // mes anterior

	seedOrder(t, s, entity.OrderStatusPaid, 120000, now)            // cuenta
	seedOrder(t, s, entity.OrderStatusPaid, 80000, now)             // cuenta
	seedOrder(t, s, entity.OrderStatusPending, 999999, now)         // pendiente: no suma
	seedOrder(t, s, entity.OrderStatusCancelled, 555555, now)       // anulada: no suma
	seedOrder(t, s, entity.OrderStatusPaid, 777777, outOfRange)     // fuera de rango
	seedOrder(t, s, entity.OrderStatusPending, 111111, outOfRange)  // pendiente cuenta igual

	monthly, pending, err := memory.NewMetricsRepository(s).GetSalesMetrics(context.Background(), monthStart, now)
	require.NoError(t, err)

	assert.True(t, monthly.Equal(decimal.NewFromFloat(200000)),
		"solo deben sumar las pagadas del rango: 120000 + 80000, no %s", monthly)
	assert.Equal(t, int64(2), pending,
		"las pendientes se cuentan sin importar la fecha")
}

// Caso 2: inventario — stock total y conteo bajo mínimo solo de activos.
func TestGetInventoryMetrics_SoloActivos(t *testing.T) {
	s := memory.New()
	products := memory.NewProductRepository(s)

	require.NoError(t, products.Create(newProduct("Con stock", "A-1", 1000, 40, 10)))
	require.NoError(t, products.Create(newProduct("Bajo mínimo", "A-2", 2500, 5, 10)))
	inactive := newProduct("Desactivado", "A-3", 3000, 2, 10)
	require.NoError(t, products.Create(inactive))
	_, err := products.Delete(inactive.ID)
	require.NoError(t, err)

	inStock, low, err := memory.NewMetricsRepository(s).GetInventoryMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(45), inStock, "40 + 5; el inactivo no suma")
	assert.Equal(t, int64(1), low, "solo el activo bajo mínimo cuenta")
}

// Caso 3: una transacción pendiente con vencimiento ayer cuenta como vencida;
// con vencimiento mañana no. Las pagadas nunca cuentan.
func TestGetFinanceMetrics_Vencidas(t *testing.T) {
	s := memory.New()
	finance := memory.NewFinancialRepository(s)
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	require.NoError(t, finance.Create(&entity.FinancialTransaction{
		Type: entity.TransactionTypeIncome, Category: "cartera",
		Amount: decimal.NewFromFloat(30000), DueDate: &yesterday,
		Status: entity.TransactionStatusPending,
	}))
	require.NoError(t, finance.Create(&entity.FinancialTransaction{
		Type: entity.TransactionTypeIncome, Category: "cartera",
		Amount: decimal.NewFromFloat(30000), DueDate: &tomorrow,
		Status: entity.TransactionStatusPending,
	}))
	require.NoError(t, finance.Create(&entity.FinancialTransaction{
		Type: entity.TransactionTypeIncome, Category: "cartera",
		Amount: decimal.NewFromFloat(30000), DueDate: &yesterday,
		Status: entity.TransactionStatusPaid, // pagada: no cuenta aunque venció
	}))
	require.NoError(t, finance.Create(&entity.FinancialTransaction{
		Type: entity.TransactionTypeExpense, Category: "arriendo",
		Amount: decimal.NewFromFloat(30000), // sin vencimiento: no cuenta
	}))

	customers := memory.NewCustomerRepository(s)
	require.NoError(t, customers.Create(newCustomer("Activo")))
	inactive := newCustomer("De baja")
	require.NoError(t, customers.Create(inactive))
	_, err := customers.Delete(inactive.ID)
	require.NoError(t, err)

	active, overdue, err := memory.NewMetricsRepository(s).GetFinanceMetrics(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, int64(1), active, "solo el cliente activo cuenta")
	assert.Equal(t, int64(1), overdue, "solo la pendiente vencida cuenta")
}
