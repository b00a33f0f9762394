package repository

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
//
// List: la implementación en memoria devuelve solo clientes activos; la de
// PostgreSQL devuelve todos los registros. Los llamadores no deben asumir
// ninguno de los dos filtrados.
//
// Delete es baja lógica: marca Active=false y devuelve true si el id existía.
// GetByID sigue devolviendo el registro desactivado.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(id int64, patch entity.CustomerPatch) (*entity.Customer, error)
	Delete(id int64) (bool, error)
}
