package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.FinancialRepository = (*FinancialRepo)(nil)

const txColumns = `id, type, category, description, amount, due_date, payment_date, status, order_id, customer_id, created_at`

// FinancialRepo implementación del puerto FinancialRepository sobre PostgreSQL.
type FinancialRepo struct {
	q Querier
}

// NewFinancialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFinancialRepository(q Querier) *FinancialRepo {
	return &FinancialRepo{q: q}
}

func scanTransaction(row pgx.Row) (*entity.FinancialTransaction, error) {
	var t entity.FinancialTransaction
	err := row.Scan(&t.ID, &t.Type, &t.Category, &t.Description, &t.Amount,
		&t.DueDate, &t.PaymentDate, &t.Status, &t.OrderID, &t.CustomerID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una transacción; la DB asigna id y created_at.
func (r *FinancialRepo) Create(tx *entity.FinancialTransaction) error {
	if tx.Status == "" {
		tx.Status = entity.TransactionStatusPending
	}
	query := `
		INSERT INTO financial_transactions (type, category, description, amount, due_date, payment_date, status, order_id, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		tx.Type, tx.Category, tx.Description, tx.Amount, tx.DueDate,
		tx.PaymentDate, tx.Status, tx.OrderID, tx.CustomerID,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert financial transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por id, o nil, nil si no existe.
func (r *FinancialRepo) GetByID(id int64) (*entity.FinancialTransaction, error) {
	t, err := scanTransaction(r.q.QueryRow(context.Background(),
		`SELECT `+txColumns+` FROM financial_transactions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get financial transaction: %w", err)
	}
	return t, nil
}

// List devuelve todas las transacciones en orden de id.
func (r *FinancialRepo) List() ([]*entity.FinancialTransaction, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+txColumns+` FROM financial_transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list financial transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.FinancialTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan financial transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update aplica el parche con un único UPDATE ... RETURNING, o nil, nil si el
// id no existe.
func (r *FinancialRepo) Update(id int64, patch entity.FinancialTransactionPatch) (*entity.FinancialTransaction, error) {
	var set setClause
	if patch.Type != nil {
		set.add("type", *patch.Type)
	}
	if patch.Category != nil {
		set.add("category", *patch.Category)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.Amount != nil {
		set.add("amount", *patch.Amount)
	}
	if patch.DueDate != nil {
		set.add("due_date", *patch.DueDate)
	}
	if patch.PaymentDate != nil {
		set.add("payment_date", *patch.PaymentDate)
	}
	if patch.Status != nil {
		set.add("status", *patch.Status)
	}
	if patch.OrderID != nil {
		set.add("order_id", *patch.OrderID)
	}
	if patch.CustomerID != nil {
		set.add("customer_id", *patch.CustomerID)
	}
	if set.empty() {
		return r.GetByID(id)
	}
	query := `UPDATE financial_transactions SET ` + set.sql() + ` WHERE id = $1 RETURNING ` + txColumns
	args := append([]any{id}, set.args...)
	t, err := scanTransaction(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update financial transaction: %w", err)
	}
	return t, nil
}

// Delete elimina físicamente la transacción. Devuelve true si afectó una fila.
func (r *FinancialRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM financial_transactions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete financial transaction: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
