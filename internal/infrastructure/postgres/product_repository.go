package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, COALESCE(code, ''), description, price, cost, category, unit, current_stock, minimum_stock, active, created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// List devuelve todos los registros, también los desactivados.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Code, &p.Description, &p.Price, &p.Cost,
		&p.Category, &p.Unit, &p.CurrentStock, &p.MinimumStock, &p.Active, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// nullableCode convierte el código vacío a NULL para que el UNIQUE de la
// columna no colisione entre productos sin código.
func nullableCode(code string) any {
	if code == "" {
		return nil
	}
	return code
}

// Create persiste un nuevo producto; la DB asigna id y created_at.
// Devuelve ErrDuplicate si el código ya está en uso.
func (r *ProductRepo) Create(product *entity.Product) error {
	if product.Unit == "" {
		product.Unit = entity.DefaultUnit
	}
	query := `
		INSERT INTO products (name, code, description, price, cost, category, unit, current_stock, minimum_stock, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, nullableCode(product.Code), product.Description, product.Price, product.Cost,
		product.Category, product.Unit, product.CurrentStock, product.MinimumStock, product.Active,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id (incluso desactivado), o nil, nil.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos en orden de id, sin filtrar por active.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.queryList(`SELECT ` + productColumns + ` FROM products ORDER BY id`)
}

// ListLowStock devuelve los productos activos con current_stock <= minimum_stock.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	return r.queryList(`SELECT ` + productColumns + ` FROM products
		WHERE active AND current_stock <= minimum_stock ORDER BY id`)
}

func (r *ProductRepo) queryList(query string) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update aplica el parche con un único UPDATE ... RETURNING, o nil, nil si el
// id no existe.
func (r *ProductRepo) Update(id int64, patch entity.ProductPatch) (*entity.Product, error) {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Code != nil {
		set.add("code", nullableCode(*patch.Code))
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.Price != nil {
		set.add("price", *patch.Price)
	}
	if patch.Cost != nil {
		set.add("cost", *patch.Cost)
	}
	if patch.Category != nil {
		set.add("category", *patch.Category)
	}
	if patch.Unit != nil {
		set.add("unit", *patch.Unit)
	}
	if patch.CurrentStock != nil {
		set.add("current_stock", *patch.CurrentStock)
	}
	if patch.MinimumStock != nil {
		set.add("minimum_stock", *patch.MinimumStock)
	}
	if patch.Active != nil {
		set.add("active", *patch.Active)
	}
	if set.empty() {
		return r.GetByID(id)
	}
	query := `UPDATE products SET ` + set.sql() + ` WHERE id = $1 RETURNING ` + productColumns
	args := append([]any{id}, set.args...)
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// Delete es baja lógica: marca active = false. Devuelve true si afectó una fila.
func (r *ProductRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = false WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
