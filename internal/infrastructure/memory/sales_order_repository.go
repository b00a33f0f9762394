package memory

import (
	"time"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementación en memoria del puerto SalesOrderRepository.
// Órdenes y líneas se eliminan físicamente; borrar una orden arrastra sus
// líneas para no dejar huérfanas.
type SalesOrderRepo struct {
	s *Store
}

// NewSalesOrderRepository construye el adaptador sobre el Store dado.
func NewSalesOrderRepository(s *Store) *SalesOrderRepo {
	return &SalesOrderRepo{s: s}
}

// Create asigna id y fecha de creación y guarda la orden. SaleDate vacío se
// rellena con el momento actual; Status vacío queda en pending.
func (r *SalesOrderRepo) Create(order *entity.SalesOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	if order.SaleDate.IsZero() {
		order.SaleDate = now
	}
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	r.s.orderSeq++
	order.ID = r.s.orderSeq
	order.CreatedAt = now
	r.s.orders[order.ID] = *order
	return nil
}

// GetByID devuelve la orden o nil, nil si no existe.
func (r *SalesOrderRepo) GetByID(id int64) (*entity.SalesOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// List devuelve todas las órdenes en orden ascendente de id.
func (r *SalesOrderRepo) List() ([]*entity.SalesOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.SalesOrder, 0, len(r.s.orders))
	for _, id := range sortedIDs(r.s.orders) {
		o := r.s.orders[id]
		list = append(list, &o)
	}
	return list, nil
}

// Update fusiona el parche sobre la orden. nil, nil si el id no existe.
func (r *SalesOrderRepo) Update(id int64, patch entity.SalesOrderPatch) (*entity.SalesOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	if patch.OrderNumber != nil {
		o.OrderNumber = *patch.OrderNumber
	}
	if patch.CustomerID != nil {
		o.CustomerID = patch.CustomerID
	}
	if patch.SaleDate != nil {
		o.SaleDate = *patch.SaleDate
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.Subtotal != nil {
		o.Subtotal = *patch.Subtotal
	}
	if patch.Discount != nil {
		o.Discount = *patch.Discount
	}
	if patch.Total != nil {
		o.Total = *patch.Total
	}
	if patch.Notes != nil {
		o.Notes = *patch.Notes
	}
	if patch.SellerID != nil {
		o.SellerID = patch.SellerID
	}
	r.s.orders[id] = o
	return &o, nil
}

// Delete elimina físicamente la orden y sus líneas. Devuelve false si el id
// no existe.
func (r *SalesOrderRepo) Delete(id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[id]; !ok {
		return false, nil
	}
	delete(r.s.orders, id)
	for itemID, item := range r.s.items {
		if item.OrderID == id {
			delete(r.s.items, itemID)
		}
	}
	return true, nil
}

// CreateItem asigna id y guarda la línea.
func (r *SalesOrderRepo) CreateItem(item *entity.SalesOrderItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.itemSeq++
	item.ID = r.s.itemSeq
	item.CreatedAt = time.Now()
	r.s.items[item.ID] = *item
	return nil
}

// GetItemByID devuelve la línea o nil, nil si no existe.
func (r *SalesOrderRepo) GetItemByID(id int64) (*entity.SalesOrderItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// ListItemsByOrder devuelve las líneas de una orden en orden ascendente de id.
func (r *SalesOrderRepo) ListItemsByOrder(orderID int64) ([]*entity.SalesOrderItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.SalesOrderItem
	for _, id := range sortedIDs(r.s.items) {
		it := r.s.items[id]
		if it.OrderID == orderID {
			list = append(list, &it)
		}
	}
	return list, nil
}

// UpdateItem fusiona el parche sobre la línea. nil, nil si el id no existe.
func (r *SalesOrderRepo) UpdateItem(id int64, patch entity.SalesOrderItemPatch) (*entity.SalesOrderItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	if patch.UnitPrice != nil {
		it.UnitPrice = *patch.UnitPrice
	}
	if patch.Discount != nil {
		it.Discount = *patch.Discount
	}
	if patch.Total != nil {
		it.Total = *patch.Total
	}
	r.s.items[id] = it
	return &it, nil
}

// DeleteItem elimina físicamente la línea. Devuelve false si el id no existe.
func (r *SalesOrderRepo) DeleteItem(id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return false, nil
	}
	delete(r.s.items, id)
	return true, nil
}
