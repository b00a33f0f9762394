// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Es la implementación de referencia para tests y modo demo: no es
// segura para mutación concurrente desde varios llamadores sin el mutex
// interno, y no sustituye a PostgreSQL en producción.
package memory

import (
	"os"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// Store contiene todas las colecciones y sus contadores de id. Cada contador
// arranca en 1 y se incrementa en cada create; los ids nunca se reúsan aunque
// el registro se elimine después.
type Store struct {
	mu sync.RWMutex

	users        map[int64]entity.User
	customers    map[int64]entity.Customer
	products     map[int64]entity.Product
	orders       map[int64]entity.SalesOrder
	items        map[int64]entity.SalesOrderItem
	transactions map[int64]entity.FinancialTransaction

	userSeq     int64
	customerSeq int64
	productSeq  int64
	orderSeq    int64
	itemSeq     int64
	txSeq       int64
}

// New crea un Store vacío, sin datos sembrados.
func New() *Store {
	return &Store{
		users:        map[int64]entity.User{},
		customers:    map[int64]entity.Customer{},
		products:     map[int64]entity.Product{},
		orders:       map[int64]entity.SalesOrder{},
		items:        map[int64]entity.SalesOrderItem{},
		transactions: map[int64]entity.FinancialTransaction{},
	}
}

// NewSeeded crea un Store con los datos de demostración: un usuario
// administrador, dos clientes y dos productos de ejemplo. La contraseña del
// admin se lee de SEED_ADMIN_PASSWORD; si no está definida se usa el valor de
// desarrollo "admin123".
func NewSeeded() *Store {
	s := New()
	now := time.Now()

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic("memory: hashear contraseña sembrada: " + err.Error())
	}

	s.userSeq++
	s.users[s.userSeq] = entity.User{
		ID:           s.userSeq,
		Username:     "admin",
		PasswordHash: string(hash),
		Name:         "Administrador",
		Email:        "admin@example.com",
		Role:         entity.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
	}

	for _, c := range []entity.Customer{
		{Name: "Comercial La Esquina", Email: "compras@laesquina.example.com", Phone: "3001112233", Document: "900123456-7", City: "Bogotá", Active: true},
		{Name: "Distribuciones El Puerto", Email: "ventas@elpuerto.example.com", Phone: "3014445566", Document: "901987654-3", City: "Barranquilla", Active: true},
	} {
		s.customerSeq++
		c.ID = s.customerSeq
		c.CreatedAt = now
		s.customers[c.ID] = c
	}

	for _, p := range []entity.Product{
		{Name: "Caja archivo tapa fija", Code: "ARC-001", Price: decimal.NewFromFloat(12500), Cost: decimal.NewFromFloat(8000), Category: "papelería", Unit: entity.DefaultUnit, CurrentStock: 40, MinimumStock: 10, Active: true},
		{Name: "Resma papel carta 75g", Code: "PAP-010", Price: decimal.NewFromFloat(18900), Cost: decimal.NewFromFloat(14200), Category: "papelería", Unit: entity.DefaultUnit, CurrentStock: 25, MinimumStock: 5, Active: true},
	} {
		s.productSeq++
		p.ID = s.productSeq
		p.CreatedAt = now
		s.products[p.ID] = p
	}

	return s
}

// sortedIDs devuelve las claves del mapa en orden ascendente, que coincide
// con el orden de inserción porque los ids son monotónicos.
func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
