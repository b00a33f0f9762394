package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, email, phone, document, address, city, state, zip_code, active, created_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
// A diferencia de la implementación en memoria, List devuelve todos los
// registros, también los desactivados.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Document,
		&c.Address, &c.City, &c.State, &c.ZipCode, &c.Active, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente; la DB asigna id y created_at.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, email, phone, document, address, city, state, zip_code, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		customer.Name, customer.Email, customer.Phone, customer.Document,
		customer.Address, customer.City, customer.State, customer.ZipCode, customer.Active,
	).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por id (incluso desactivado), o nil, nil.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes en orden de id, sin filtrar por active.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update aplica el parche con un único UPDATE ... RETURNING, o nil, nil si el
// id no existe.
func (r *CustomerRepo) Update(id int64, patch entity.CustomerPatch) (*entity.Customer, error) {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Email != nil {
		set.add("email", *patch.Email)
	}
	if patch.Phone != nil {
		set.add("phone", *patch.Phone)
	}
	if patch.Document != nil {
		set.add("document", *patch.Document)
	}
	if patch.Address != nil {
		set.add("address", *patch.Address)
	}
	if patch.City != nil {
		set.add("city", *patch.City)
	}
	if patch.State != nil {
		set.add("state", *patch.State)
	}
	if patch.ZipCode != nil {
		set.add("zip_code", *patch.ZipCode)
	}
	if patch.Active != nil {
		set.add("active", *patch.Active)
	}
	if set.empty() {
		return r.GetByID(id)
	}
	query := `UPDATE customers SET ` + set.sql() + ` WHERE id = $1 RETURNING ` + customerColumns
	args := append([]any{id}, set.args...)
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return c, nil
}

// Delete es baja lógica: marca active = false. Devuelve true si afectó una fila.
func (r *CustomerRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE customers SET active = false WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
