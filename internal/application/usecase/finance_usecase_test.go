package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/infrastructure/memory"
)

func newFinanceUC() *usecase.FinanceUseCase {
	return usecase.NewFinanceUseCase(memory.NewFinancialRepository(memory.New()))
}

// Caso 1: type inválido se rechaza; status vacío queda pendiente.
func TestFinanceUseCase_Validaciones(t *testing.T) {
	uc := newFinanceUC()

	_, err := uc.Create(dto.CreateTransactionRequest{
		Type:     "transfer",
		Category: "otros",
		Amount:   decimal.NewFromFloat(1000),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	tx, err := uc.Create(dto.CreateTransactionRequest{
		Type:     "income",
		Category: "ventas",
		Amount:   decimal.NewFromFloat(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", tx.Status)
	assert.False(t, tx.Overdue, "sin vencimiento no hay mora")
}

// Caso 2: el campo overdue se deriva del vencimiento en cada consulta. Una
// pendiente vencida ayer lo reporta; al marcarla pagada deja de reportarlo.
func TestFinanceUseCase_OverdueDerivado(t *testing.T) {
	uc := newFinanceUC()
	yesterday := time.Now().Add(-24 * time.Hour)

	tx, err := uc.Create(dto.CreateTransactionRequest{
		Type:     "income",
		Category: "cartera",
		Amount:   decimal.NewFromFloat(250000),
		DueDate:  &yesterday,
	})
	require.NoError(t, err)
	assert.True(t, tx.Overdue, "pendiente con vencimiento ayer está en mora")

	paid := "paid"
	now := time.Now()
	updated, err := uc.Update(tx.ID, dto.UpdateTransactionRequest{
		Status:      &paid,
		PaymentDate: &now,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.Overdue, "una transacción pagada nunca está en mora")
}

// Caso 3: vencimiento mañana no cuenta como mora.
func TestFinanceUseCase_VencimientoFuturo(t *testing.T) {
	uc := newFinanceUC()
	tomorrow := time.Now().Add(24 * time.Hour)

	tx, err := uc.Create(dto.CreateTransactionRequest{
		Type:     "expense",
		Category: "arriendo",
		Amount:   decimal.NewFromFloat(1200000),
		DueDate:  &tomorrow,
	})
	require.NoError(t, err)
	assert.False(t, tx.Overdue)
}

// Caso 4: update y delete sobre id inexistente.
func TestFinanceUseCase_IdInexistente(t *testing.T) {
	uc := newFinanceUC()

	tx, err := uc.Update(9999, dto.UpdateTransactionRequest{})
	require.NoError(t, err)
	assert.Nil(t, tx)

	deleted, err := uc.Delete(9999)
	require.NoError(t, err)
	assert.False(t, deleted)
}
