package memory

import (
	"time"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto ProductRepository.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el adaptador sobre el Store dado.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// Create asigna id y fecha de creación y guarda el producto. Devuelve
// ErrDuplicate si el código ya está en uso por otro producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if product.Code != "" {
		for _, p := range r.s.products {
			if p.Code == product.Code {
				return domain.ErrDuplicate
			}
		}
	}
	if product.Unit == "" {
		product.Unit = entity.DefaultUnit
	}
	r.s.productSeq++
	product.ID = r.s.productSeq
	product.CreatedAt = time.Now()
	r.s.products[product.ID] = *product
	return nil
}

// GetByID devuelve el producto (incluso desactivado) o nil, nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// List devuelve solo los productos activos, en orden ascendente de id.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.s.products))
	for _, id := range sortedIDs(r.s.products) {
		p := r.s.products[id]
		if !p.Active {
			continue
		}
		list = append(list, &p)
	}
	return list, nil
}

// ListLowStock devuelve los productos activos con CurrentStock <= MinimumStock.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Product
	for _, id := range sortedIDs(r.s.products) {
		p := r.s.products[id]
		if p.LowStock() {
			list = append(list, &p)
		}
	}
	return list, nil
}

// Update fusiona el parche sobre el registro. nil, nil si el id no existe.
func (r *ProductRepo) Update(id int64, patch entity.ProductPatch) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Code != nil {
		p.Code = *patch.Code
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Cost != nil {
		p.Cost = *patch.Cost
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Unit != nil {
		p.Unit = *patch.Unit
	}
	if patch.CurrentStock != nil {
		p.CurrentStock = *patch.CurrentStock
	}
	if patch.MinimumStock != nil {
		p.MinimumStock = *patch.MinimumStock
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
	r.s.products[id] = p
	return &p, nil
}

// Delete es baja lógica: marca el producto como inactivo. Devuelve false si
// el id no existe.
func (r *ProductRepo) Delete(id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return false, nil
	}
	p.Active = false
	r.s.products[id] = p
	return true, nil
}
