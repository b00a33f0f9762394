package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

const (
	orderColumns = `id, order_number, customer_id, sale_date, status, subtotal, discount, total, notes, seller_id, created_at`
	itemColumns  = `id, order_id, product_id, quantity, unit_price, discount, total, created_at`
)

// SalesOrderRepo implementación del puerto SalesOrderRepository sobre
// PostgreSQL. El DELETE de una orden arrastra sus líneas por la FK ON DELETE
// CASCADE, de modo que sigue siendo una única sentencia.
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

func scanOrder(row pgx.Row) (*entity.SalesOrder, error) {
	var o entity.SalesOrder
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.SaleDate, &o.Status,
		&o.Subtotal, &o.Discount, &o.Total, &o.Notes, &o.SellerID, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanItem(row pgx.Row) (*entity.SalesOrderItem, error) {
	var it entity.SalesOrderItem
	err := row.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity,
		&it.UnitPrice, &it.Discount, &it.Total, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Create persiste la cabecera; la DB asigna id, created_at y, si SaleDate
// viene en cero, la fecha de venta.
func (r *SalesOrderRepo) Create(order *entity.SalesOrder) error {
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	query := `
		INSERT INTO sales_orders (order_number, customer_id, sale_date, status, subtotal, discount, total, notes, seller_id)
		VALUES ($1, $2, COALESCE($3, now()), $4, $5, $6, $7, $8, $9)
		RETURNING id, sale_date, created_at`
	var saleDate any
	if !order.SaleDate.IsZero() {
		saleDate = order.SaleDate
	}
	err := r.q.QueryRow(context.Background(), query,
		order.OrderNumber, order.CustomerID, saleDate, order.Status,
		order.Subtotal, order.Discount, order.Total, order.Notes, order.SellerID,
	).Scan(&order.ID, &order.SaleDate, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sales order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por id, o nil, nil si no existe.
func (r *SalesOrderRepo) GetByID(id int64) (*entity.SalesOrder, error) {
	o, err := scanOrder(r.q.QueryRow(context.Background(),
		`SELECT `+orderColumns+` FROM sales_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	return o, nil
}

// List devuelve todas las órdenes en orden de id.
func (r *SalesOrderRepo) List() ([]*entity.SalesOrder, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+orderColumns+` FROM sales_orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Update aplica el parche con un único UPDATE ... RETURNING, o nil, nil si el
// id no existe. Total no se recalcula: es responsabilidad del llamador.
func (r *SalesOrderRepo) Update(id int64, patch entity.SalesOrderPatch) (*entity.SalesOrder, error) {
	var set setClause
	if patch.OrderNumber != nil {
		set.add("order_number", *patch.OrderNumber)
	}
	if patch.CustomerID != nil {
		set.add("customer_id", *patch.CustomerID)
	}
	if patch.SaleDate != nil {
		set.add("sale_date", *patch.SaleDate)
	}
	if patch.Status != nil {
		set.add("status", *patch.Status)
	}
	if patch.Subtotal != nil {
		set.add("subtotal", *patch.Subtotal)
	}
	if patch.Discount != nil {
		set.add("discount", *patch.Discount)
	}
	if patch.Total != nil {
		set.add("total", *patch.Total)
	}
	if patch.Notes != nil {
		set.add("notes", *patch.Notes)
	}
	if patch.SellerID != nil {
		set.add("seller_id", *patch.SellerID)
	}
	if set.empty() {
		return r.GetByID(id)
	}
	query := `UPDATE sales_orders SET ` + set.sql() + ` WHERE id = $1 RETURNING ` + orderColumns
	args := append([]any{id}, set.args...)
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update sales order: %w", err)
	}
	return o, nil
}

// Delete elimina físicamente la orden (líneas en cascada). Devuelve true si
// afectó una fila.
func (r *SalesOrderRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM sales_orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sales order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// CreateItem persiste una línea; la DB asigna id y created_at.
func (r *SalesOrderRepo) CreateItem(item *entity.SalesOrderItem) error {
	query := `
		INSERT INTO sales_order_items (order_id, product_id, quantity, unit_price, discount, total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Discount, item.Total,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sales order item: %w", err)
	}
	return nil
}

// GetItemByID obtiene una línea por id, o nil, nil si no existe.
func (r *SalesOrderRepo) GetItemByID(id int64) (*entity.SalesOrderItem, error) {
	it, err := scanItem(r.q.QueryRow(context.Background(),
		`SELECT `+itemColumns+` FROM sales_order_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order item: %w", err)
	}
	return it, nil
}

// ListItemsByOrder devuelve las líneas de una orden en orden de id.
func (r *SalesOrderRepo) ListItemsByOrder(orderID int64) ([]*entity.SalesOrderItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+itemColumns+` FROM sales_order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list sales order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrderItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales order item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// UpdateItem aplica el parche con un único UPDATE ... RETURNING, o nil, nil.
func (r *SalesOrderRepo) UpdateItem(id int64, patch entity.SalesOrderItemPatch) (*entity.SalesOrderItem, error) {
	var set setClause
	if patch.Quantity != nil {
		set.add("quantity", *patch.Quantity)
	}
	if patch.UnitPrice != nil {
		set.add("unit_price", *patch.UnitPrice)
	}
	if patch.Discount != nil {
		set.add("discount", *patch.Discount)
	}
	if patch.Total != nil {
		set.add("total", *patch.Total)
	}
	if set.empty() {
		return r.GetItemByID(id)
	}
	query := `UPDATE sales_order_items SET ` + set.sql() + ` WHERE id = $1 RETURNING ` + itemColumns
	args := append([]any{id}, set.args...)
	it, err := scanItem(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update sales order item: %w", err)
	}
	return it, nil
}

// DeleteItem elimina físicamente la línea. Devuelve true si afectó una fila.
func (r *SalesOrderRepo) DeleteItem(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM sales_order_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sales order item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
