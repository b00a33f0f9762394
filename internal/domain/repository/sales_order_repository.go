package repository

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// SalesOrderRepository define el puerto de persistencia para SalesOrder y sus
// líneas. Las bajas son físicas: Delete devuelve true si eliminó una fila.
//
// Componer orden + líneas en un flujo atómico es responsabilidad del llamador;
// cada operación es atómica solo a nivel de sentencia.
type SalesOrderRepository interface {
	Create(order *entity.SalesOrder) error
	GetByID(id int64) (*entity.SalesOrder, error)
	List() ([]*entity.SalesOrder, error)
	Update(id int64, patch entity.SalesOrderPatch) (*entity.SalesOrder, error)
	Delete(id int64) (bool, error)

	CreateItem(item *entity.SalesOrderItem) error
	GetItemByID(id int64) (*entity.SalesOrderItem, error)
	ListItemsByOrder(orderID int64) ([]*entity.SalesOrderItem, error)
	UpdateItem(id int64, patch entity.SalesOrderItemPatch) (*entity.SalesOrderItem, error)
	DeleteItem(id int64) (bool, error)
}
