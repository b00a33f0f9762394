package repository

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
//
// List: en memoria devuelve solo productos activos; en PostgreSQL devuelve
// todos. Los llamadores no deben asumir el filtrado.
//
// Delete es baja lógica (Active=false), igual que Customer.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// ListLowStock devuelve exactamente los productos activos con
	// CurrentStock <= MinimumStock.
	ListLowStock() ([]*entity.Product, error)
	Update(id int64, patch entity.ProductPatch) (*entity.Product, error)
	Delete(id int64) (bool, error)
}
