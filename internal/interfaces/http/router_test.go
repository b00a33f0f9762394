package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/gestion-api/internal/application/analytics"
	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/gestion-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta la API completa sobre el almacén en memoria sembrado.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewSeeded()

	users := memory.NewUserRepository(store)
	customers := memory.NewCustomerRepository(store)
	products := memory.NewProductRepository(store)
	sales := memory.NewSalesOrderRepository(store)
	finance := memory.NewFinancialRepository(store)
	metrics := memory.NewMetricsRepository(store)

	salesUC := usecase.NewSalesUseCase(sales)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(users, auth.JWTConfig{
			Secret: "test-secret", ExpMinutes: 60, Issuer: "gestion-api-test",
		}),
		UserUC:      usecase.NewUserUseCase(users),
		CustomerUC:  usecase.NewCustomerUseCase(customers),
		ProductUC:   usecase.NewProductUseCase(products),
		SalesUC:     salesUC,
		SalesPDFUC:  usecase.NewSalesPDFUseCase(sales, customers, products, nil),
		FinanceUC:   usecase.NewFinanceUseCase(finance),
		DashboardUC: appanalytics.NewDashboardUseCase(metrics),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: ciclo completo de un cliente — crear, consultar, desactivar.
func TestCustomerEndpoints_CicloCompleto(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/customers", fiber.Map{
		"name": "Ferretería El Tornillo", "city": "Medellín",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]any
	decode(t, resp, &created)
	id := int64(created["id"].(float64))
	assert.Equal(t, true, created["active"])

	// El sembrado trae 2 clientes; ahora son 3.
	resp = doJSON(t, app, http.MethodGet, "/api/customers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Total int `json:"total"`
	}
	decode(t, resp, &list)
	assert.Equal(t, 3, list.Total)

	// Baja lógica.
	resp = doJSON(t, app, http.MethodDelete, "/api/customers/3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var del struct {
		Deleted bool `json:"deleted"`
	}
	decode(t, resp, &del)
	assert.True(t, del.Deleted)

	// GetByID lo sigue devolviendo, inactivo; el listado ya no.
	resp = doJSON(t, app, http.MethodGet, "/api/customers/3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]any
	decode(t, resp, &got)
	assert.Equal(t, false, got["active"])
	assert.EqualValues(t, id, got["id"])

	resp = doJSON(t, app, http.MethodGet, "/api/customers", nil)
	decode(t, resp, &list)
	assert.Equal(t, 2, list.Total)
}

// Caso 2: errores de validación y not-found.
func TestCustomerEndpoints_Errores(t *testing.T) {
	app := buildTestApp(t)

	// Sin name → 400.
	resp := doJSON(t, app, http.MethodPost, "/api/customers", fiber.Map{"city": "Cali"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Id no numérico → 400.
	resp = doJSON(t, app, http.MethodGet, "/api/customers/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Id inexistente → 404.
	resp = doJSON(t, app, http.MethodGet, "/api/customers/9999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/customers/9999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

// Caso 3: login del admin sembrado (contraseña de desarrollo) y rechazo de
// credenciales incorrectas.
func TestLoginEndpoint(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"username": "admin", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	decode(t, resp, &login)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "admin", login.User.Username)
	assert.Equal(t, "admin", login.User.Role)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"username": "admin", "password": "incorrecta",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos y ventas
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: el código de producto duplicado responde 409 y low-stock responde
// solo los productos bajo mínimo.
func TestProductEndpoints_DuplicadoYLowStock(t *testing.T) {
	app := buildTestApp(t)

	// ARC-001 ya existe en el sembrado.
	resp := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{
		"name": "Duplicado", "code": "ARC-001", "price": 100,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Producto bajo mínimo.
	resp = doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{
		"name": "Tóner impresora", "code": "TON-220", "price": 2500,
		"current_stock": 5, "minimum_stock": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]any
	decode(t, resp, &created)
	assert.Equal(t, true, created["low_stock"])

	resp = doJSON(t, app, http.MethodGet, "/api/products/low-stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Total int              `json:"total"`
		Items []map[string]any `json:"items"`
	}
	decode(t, resp, &list)
	require.Equal(t, 1, list.Total, "los sembrados tienen stock suficiente")
	assert.Equal(t, "TON-220", list.Items[0]["code"])
}

// Caso 5: crear una orden con líneas y recorrer sus sub-rutas.
func TestSalesEndpoints_OrdenConLineas(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", fiber.Map{
		"customer_id": 1,
		"subtotal":    25000, "total": 25000,
		"items": []fiber.Map{
			{"product_id": 1, "quantity": 2, "unit_price": 12500, "total": 25000},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order struct {
		ID          int64            `json:"id"`
		OrderNumber string           `json:"order_number"`
		Status      string           `json:"status"`
		Items       []map[string]any `json:"items"`
	}
	decode(t, resp, &order)
	assert.Contains(t, order.OrderNumber, "PED-")
	assert.Equal(t, "pending", order.Status)
	require.Len(t, order.Items, 1)

	resp = doJSON(t, app, http.MethodGet, "/api/sales/1/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []map[string]any
	decode(t, resp, &items)
	assert.Len(t, items, 1)

	// Línea de una orden inexistente → 404.
	resp = doJSON(t, app, http.MethodGet, "/api/sales/999/items", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Status inválido → 400.
	resp = doJSON(t, app, http.MethodPut, "/api/sales/1", fiber.Map{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Eliminación física de la orden arrastra sus líneas.
	resp = doJSON(t, app, http.MethodDelete, "/api/sales/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/sales/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: las métricas reflejan el estado sembrado — dos clientes activos y
// stock 65 (40 + 25), sin ventas ni transacciones.
func TestDashboardEndpoint_Metricas(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var m struct {
		MonthlySales    string `json:"monthly_sales"`
		PendingOrders   int64  `json:"pending_orders"`
		ProductsInStock int64  `json:"products_in_stock"`
		ActiveCustomers int64  `json:"active_customers"`
		LowStockCount   int64  `json:"low_stock_count"`
		OverdueCount    int64  `json:"overdue_count"`
	}
	decode(t, resp, &m)

	assert.Equal(t, "0", m.MonthlySales)
	assert.Zero(t, m.PendingOrders)
	assert.Equal(t, int64(65), m.ProductsInStock)
	assert.Equal(t, int64(2), m.ActiveCustomers)
	assert.Zero(t, m.LowStockCount)
	assert.Zero(t, m.OverdueCount)
}
