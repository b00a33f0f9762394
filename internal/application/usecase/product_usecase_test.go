package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/infrastructure/memory"
)

func newProductUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(memory.NewProductRepository(memory.New()))
}

// Caso 1: los valores por defecto del create — unidad "UN", costo 0, activo.
func TestProductUseCase_CreateDefaults(t *testing.T) {
	uc := newProductUC()

	p, err := uc.Create(dto.CreateProductRequest{
		Name:  "Marcador borrable",
		Price: decimal.NewFromFloat(4500),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "UN", p.Unit, "unit vacío queda en UN")
	assert.True(t, p.Cost.IsZero(), "cost ausente queda en 0")
	assert.True(t, p.Active)
	assert.True(t, p.LowStock, "stock 0 con mínimo 0 cumple stock <= mínimo")
}

// Caso 2: un producto de precio 2500 con stock 5 y mínimo 10 sale con
// low_stock=true en la respuesta y aparece en el listado de stock bajo.
func TestProductUseCase_LowStockDerivado(t *testing.T) {
	uc := newProductUC()

	p, err := uc.Create(dto.CreateProductRequest{
		Name:         "Tóner impresora",
		Code:         "TON-220",
		Price:        decimal.NewFromFloat(2500),
		CurrentStock: 5,
		MinimumStock: 10,
	})
	require.NoError(t, err)
	assert.True(t, p.LowStock, "stock 5 <= mínimo 10")

	low, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Equal(t, 1, low.Total)
	assert.Equal(t, p.ID, low.Items[0].ID)

	// Reposición por update parcial: sale del listado.
	stock := int64(50)
	updated, err := uc.Update(p.ID, dto.UpdateProductRequest{CurrentStock: &stock})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.LowStock)

	low, err = uc.ListLowStock()
	require.NoError(t, err)
	assert.Zero(t, low.Total)
}

// Caso 3: update sobre id inexistente devuelve nil, nil; delete devuelve false.
func TestProductUseCase_IdInexistente(t *testing.T) {
	uc := newProductUC()

	p, err := uc.Update(9999, dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, p)

	deleted, err := uc.Delete(9999)
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err := uc.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}
