package memory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newCustomer(name string) *entity.Customer {
	return &entity.Customer{Name: name, Active: true}
}

func newProduct(name, code string, price float64, stock, minStock int64) *entity.Product {
	return &entity.Product{
		Name:         name,
		Code:         code,
		Price:        decimal.NewFromFloat(price),
		CurrentStock: stock,
		MinimumStock: minStock,
		Active:       true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignación de ids
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: los ids se asignan 1, 2, 3... en orden de creación.
func TestCustomerRepo_IdsConsecutivos(t *testing.T) {
	repo := memory.NewCustomerRepository(memory.New())

	for i, name := range []string{"Cliente A", "Cliente B", "Cliente C"} {
		c := newCustomer(name)
		require.NoError(t, repo.Create(c))
		assert.Equal(t, int64(i+1), c.ID, "el id debe ser consecutivo desde 1")
		assert.False(t, c.CreatedAt.IsZero(), "create debe rellenar CreatedAt")
	}
}

// Caso 2: el contador no reúsa ids después de una eliminación física.
func TestSalesOrderRepo_IdsNoSeReusanTrasDelete(t *testing.T) {
	repo := memory.NewSalesOrderRepository(memory.New())

	first := &entity.SalesOrder{OrderNumber: "PED-000001"}
	require.NoError(t, repo.Create(first))
	require.Equal(t, int64(1), first.ID)

	deleted, err := repo.Delete(first.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	second := &entity.SalesOrder{OrderNumber: "PED-000002"}
	require.NoError(t, repo.Create(second))
	assert.Equal(t, int64(2), second.ID,
		"el id eliminado no debe reusarse; el contador sigue avanzando")
}

// ──────────────────────────────────────────────────────────────────────────────
// Baja lógica vs eliminación física
// ──────────────────────────────────────────────────────────────────────────────

// Caso 3: Delete de cliente es baja lógica — GetByID lo sigue devolviendo con
// Active=false y List deja de incluirlo.
func TestCustomerRepo_DeleteEsBajaLogica(t *testing.T) {
	repo := memory.NewCustomerRepository(memory.New())

	c := newCustomer("Comercial La Esquina")
	require.NoError(t, repo.Create(c))

	deleted, err := repo.Delete(c.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := repo.GetByID(c.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "la baja lógica no elimina el registro")
	assert.False(t, got.Active, "el cliente debe quedar inactivo")

	list, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, list, "List solo devuelve clientes activos")
}

// Caso 4: Delete de transacción es física — GetByID devuelve nil, nil después.
func TestFinancialRepo_DeleteEsFisica(t *testing.T) {
	repo := memory.NewFinancialRepository(memory.New())

	tx := &entity.FinancialTransaction{
		Type:     entity.TransactionTypeIncome,
		Category: "ventas",
		Amount:   decimal.NewFromFloat(50000),
	}
	require.NoError(t, repo.Create(tx))
	assert.Equal(t, entity.TransactionStatusPending, tx.Status,
		"status vacío debe quedar en pending")

	deleted, err := repo.Delete(tx.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := repo.GetByID(tx.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "tras la eliminación física no queda rastro")

	// Un segundo delete sobre el mismo id devuelve false sin error.
	deleted, err = repo.Delete(tx.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

// Caso 5: eliminar una orden arrastra sus líneas.
func TestSalesOrderRepo_DeleteArrastraLineas(t *testing.T) {
	repo := memory.NewSalesOrderRepository(memory.New())

	order := &entity.SalesOrder{OrderNumber: "PED-A1B2C3D4"}
	require.NoError(t, repo.Create(order))

	item := &entity.SalesOrderItem{
		OrderID:   order.ID,
		ProductID: 1,
		Quantity:  decimal.NewFromInt(2),
		UnitPrice: decimal.NewFromFloat(12500),
		Total:     decimal.NewFromFloat(25000),
	}
	require.NoError(t, repo.CreateItem(item))

	deleted, err := repo.Delete(order.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	gotItem, err := repo.GetItemByID(item.ID)
	require.NoError(t, err)
	assert.Nil(t, gotItem, "las líneas de una orden eliminada no deben sobrevivir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización parcial
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: un parche vacío no modifica ningún campo.
func TestProductRepo_ParcheVacioNoModifica(t *testing.T) {
	repo := memory.NewProductRepository(memory.New())

	p := newProduct("Resma papel carta 75g", "PAP-010", 18900, 25, 5)
	require.NoError(t, repo.Create(p))
	before, err := repo.GetByID(p.ID)
	require.NoError(t, err)

	after, err := repo.Update(p.ID, entity.ProductPatch{})
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, *before, *after, "el parche vacío debe dejar el registro idéntico")
}

// Caso 7: solo se tocan los campos presentes en el parche.
func TestProductRepo_ParcheParcialSoloTocaCamposPresentes(t *testing.T) {
	repo := memory.NewProductRepository(memory.New())

	p := newProduct("Caja archivo tapa fija", "ARC-001", 12500, 40, 10)
	require.NoError(t, repo.Create(p))

	newPrice := decimal.NewFromFloat(13900)
	got, err := repo.Update(p.ID, entity.ProductPatch{Price: &newPrice})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.True(t, got.Price.Equal(newPrice))
	assert.Equal(t, "Caja archivo tapa fija", got.Name, "los campos no parcheados no cambian")
	assert.Equal(t, int64(40), got.CurrentStock)
	assert.True(t, got.Active)
}

// Caso 8: Update sobre un id inexistente devuelve nil, nil en cada entidad.
func TestRepos_UpdateIdInexistenteDevuelveNilNil(t *testing.T) {
	s := memory.New()
	const missing = int64(9999)

	u, err := memory.NewUserRepository(s).Update(missing, entity.UserPatch{})
	require.NoError(t, err)
	assert.Nil(t, u)

	c, err := memory.NewCustomerRepository(s).Update(missing, entity.CustomerPatch{})
	require.NoError(t, err)
	assert.Nil(t, c)

	p, err := memory.NewProductRepository(s).Update(missing, entity.ProductPatch{})
	require.NoError(t, err)
	assert.Nil(t, p)

	salesRepo := memory.NewSalesOrderRepository(s)
	o, err := salesRepo.Update(missing, entity.SalesOrderPatch{})
	require.NoError(t, err)
	assert.Nil(t, o)

	it, err := salesRepo.UpdateItem(missing, entity.SalesOrderItemPatch{})
	require.NoError(t, err)
	assert.Nil(t, it)

	tx, err := memory.NewFinancialRepository(s).Update(missing, entity.FinancialTransactionPatch{})
	require.NoError(t, err)
	assert.Nil(t, tx)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

// Caso 9: List devuelve los registros en orden ascendente de id.
func TestFinancialRepo_ListOrdenAscendente(t *testing.T) {
	repo := memory.NewFinancialRepository(memory.New())

	for _, cat := range []string{"arriendo", "servicios", "nómina"} {
		require.NoError(t, repo.Create(&entity.FinancialTransaction{
			Type:     entity.TransactionTypeExpense,
			Category: cat,
			Amount:   decimal.NewFromFloat(100000),
		}))
	}

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, tx := range list {
		assert.Equal(t, int64(i+1), tx.ID, "el listado debe venir ordenado por id")
	}
}

// Caso 10: duplicados — username de usuario y código de producto.
func TestRepos_Duplicados(t *testing.T) {
	s := memory.New()

	users := memory.NewUserRepository(s)
	require.NoError(t, users.Create(&entity.User{Username: "admin", Name: "Admin", Active: true}))
	err := users.Create(&entity.User{Username: "admin", Name: "Otro", Active: true})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "username repetido debe rechazarse")

	products := memory.NewProductRepository(s)
	require.NoError(t, products.Create(newProduct("Producto A", "COD-1", 1000, 10, 1)))
	err = products.Create(newProduct("Producto B", "COD-1", 2000, 5, 1))
	assert.ErrorIs(t, err, domain.ErrDuplicate, "código repetido debe rechazarse")

	// Código vacío no cuenta como duplicado.
	require.NoError(t, products.Create(newProduct("Sin código 1", "", 500, 1, 1)))
	require.NoError(t, products.Create(newProduct("Sin código 2", "", 600, 1, 1)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock bajo
// ──────────────────────────────────────────────────────────────────────────────

// Caso 11: un producto con stock 5 y mínimo 10 aparece en low-stock; al subir
// el stock por encima del mínimo desaparece del listado.
func TestProductRepo_LowStockTransiciones(t *testing.T) {
	repo := memory.NewProductRepository(memory.New())

	p := newProduct("Tóner impresora", "TON-220", 2500, 5, 10)
	require.NoError(t, repo.Create(p))

	low, err := repo.ListLowStock()
	require.NoError(t, err)
	require.Len(t, low, 1, "stock 5 <= mínimo 10 debe reportarse")
	assert.Equal(t, p.ID, low[0].ID)

	// Reposición: stock 30 > mínimo 10.
	newStock := int64(30)
	_, err = repo.Update(p.ID, entity.ProductPatch{CurrentStock: &newStock})
	require.NoError(t, err)

	low, err = repo.ListLowStock()
	require.NoError(t, err)
	assert.Empty(t, low, "tras reponer stock el producto sale del listado")

	// En el límite exacto (stock == mínimo) vuelve a reportarse.
	limit := int64(10)
	_, err = repo.Update(p.ID, entity.ProductPatch{CurrentStock: &limit})
	require.NoError(t, err)

	low, err = repo.ListLowStock()
	require.NoError(t, err)
	assert.Len(t, low, 1, "stock igual al mínimo cuenta como bajo")
}

// Caso 12: los productos desactivados no aparecen en low-stock.
func TestProductRepo_LowStockIgnoraInactivos(t *testing.T) {
	repo := memory.NewProductRepository(memory.New())

	p := newProduct("Grapadora", "GRA-001", 9900, 0, 5)
	require.NoError(t, repo.Create(p))

	deleted, err := repo.Delete(p.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	low, err := repo.ListLowStock()
	require.NoError(t, err)
	assert.Empty(t, low, "un producto inactivo no cuenta aunque su stock esté bajo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Store sembrado
// ──────────────────────────────────────────────────────────────────────────────

// Caso 13: NewSeeded deja un admin, dos clientes y dos productos listos.
func TestNewSeeded_DatosDemo(t *testing.T) {
	s := memory.NewSeeded()

	admin, err := memory.NewUserRepository(s).GetByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.True(t, admin.Active)
	assert.NotEmpty(t, admin.PasswordHash)

	customers, err := memory.NewCustomerRepository(s).List()
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	products, err := memory.NewProductRepository(s).List()
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

// Caso 14: SaleDate vacío en el create de una orden queda en "ahora".
func TestSalesOrderRepo_SaleDatePorDefecto(t *testing.T) {
	repo := memory.NewSalesOrderRepository(memory.New())

	order := &entity.SalesOrder{OrderNumber: "PED-SINFECHA"}
	before := time.Now()
	require.NoError(t, repo.Create(order))

	assert.Equal(t, entity.OrderStatusPending, order.Status, "status vacío queda en pending")
	assert.False(t, order.SaleDate.Before(before), "SaleDate debe rellenarse con el instante del create")
}
