package memory

import (
	"time"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria del puerto CustomerRepository.
type CustomerRepo struct {
	s *Store
}

// NewCustomerRepository construye el adaptador sobre el Store dado.
func NewCustomerRepository(s *Store) *CustomerRepo {
	return &CustomerRepo{s: s}
}

// Create asigna id y fecha de creación y guarda el cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customerSeq++
	customer.ID = r.s.customerSeq
	customer.CreatedAt = time.Now()
	r.s.customers[customer.ID] = *customer
	return nil
}

// GetByID devuelve el cliente (incluso desactivado) o nil, nil si no existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List devuelve solo los clientes activos, en orden ascendente de id.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Customer, 0, len(r.s.customers))
	for _, id := range sortedIDs(r.s.customers) {
		c := r.s.customers[id]
		if !c.Active {
			continue
		}
		list = append(list, &c)
	}
	return list, nil
}

// Update fusiona el parche sobre el registro. nil, nil si el id no existe.
func (r *CustomerRepo) Update(id int64, patch entity.CustomerPatch) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Document != nil {
		c.Document = *patch.Document
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.City != nil {
		c.City = *patch.City
	}
	if patch.State != nil {
		c.State = *patch.State
	}
	if patch.ZipCode != nil {
		c.ZipCode = *patch.ZipCode
	}
	if patch.Active != nil {
		c.Active = *patch.Active
	}
	r.s.customers[id] = c
	return &c, nil
}

// Delete es baja lógica: marca el cliente como inactivo sin eliminar el
// registro. Devuelve false si el id no existe.
func (r *CustomerRepo) Delete(id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return false, nil
	}
	c.Active = false
	r.s.customers[id] = c
	return true, nil
}
