package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/infrastructure/memory"
)

func newSalesUC() *usecase.SalesUseCase {
	return usecase.NewSalesUseCase(memory.NewSalesOrderRepository(memory.New()))
}

// Caso 1: una orden sin número recibe uno generado con prefijo PED-; sin
// status queda pendiente.
func TestSalesUseCase_CreateGeneraNumero(t *testing.T) {
	uc := newSalesUC()

	order, err := uc.Create(dto.CreateSalesOrderRequest{
		Total: decimal.NewFromFloat(25000),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNumber, "PED-"),
		"el número generado lleva prefijo PED-, no %q", order.OrderNumber)
	assert.Len(t, order.OrderNumber, len("PED-")+8)
	assert.Equal(t, "pending", order.Status)
	assert.False(t, order.SaleDate.IsZero())
}

// Caso 2: crear con líneas inline las persiste y GetByID las devuelve.
func TestSalesUseCase_CreateConLineas(t *testing.T) {
	uc := newSalesUC()

	order, err := uc.Create(dto.CreateSalesOrderRequest{
		OrderNumber: "PED-TEST0001",
		Subtotal:    decimal.NewFromFloat(50000),
		Total:       decimal.NewFromFloat(50000),
		Items: []dto.CreateSalesOrderItemInline{
			{ProductID: 1, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(12500), Total: decimal.NewFromFloat(25000)},
			{ProductID: 2, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(25000), Total: decimal.NewFromFloat(25000)},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.Equal(t, order.ID, order.Items[0].OrderID)

	got, err := uc.GetByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Items, 2)
}

// Caso 3: status inválido se rechaza tanto en create como en update.
func TestSalesUseCase_StatusInvalido(t *testing.T) {
	uc := newSalesUC()

	_, err := uc.Create(dto.CreateSalesOrderRequest{Status: "shipped"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	order, err := uc.Create(dto.CreateSalesOrderRequest{})
	require.NoError(t, err)

	bad := "shipped"
	_, err = uc.Update(order.ID, dto.UpdateSalesOrderRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 4: ListItems de una orden inexistente devuelve ErrNotFound; de una
// orden sin líneas devuelve lista vacía.
func TestSalesUseCase_ListItems(t *testing.T) {
	uc := newSalesUC()

	_, err := uc.ListItems(9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	order, err := uc.Create(dto.CreateSalesOrderRequest{})
	require.NoError(t, err)

	items, err := uc.ListItems(order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// Caso 5: AddItem sobre una orden inexistente devuelve nil, nil; sobre una
// existente crea la línea y DeleteItem la elimina físicamente.
func TestSalesUseCase_AddYDeleteItem(t *testing.T) {
	uc := newSalesUC()

	item, err := uc.AddItem(9999, dto.CreateSalesOrderItemRequest{ProductID: 1})
	require.NoError(t, err)
	assert.Nil(t, item)

	order, err := uc.Create(dto.CreateSalesOrderRequest{})
	require.NoError(t, err)

	item, err = uc.AddItem(order.ID, dto.CreateSalesOrderItemRequest{
		ProductID: 1,
		Quantity:  decimal.NewFromInt(3),
		UnitPrice: decimal.NewFromFloat(1000),
		Total:     decimal.NewFromFloat(3000),
	})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, order.ID, item.OrderID)

	deleted, err := uc.DeleteItem(item.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	items, err := uc.ListItems(order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
