package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// SalesUseCase casos de uso para órdenes de venta y sus líneas.
//
// Crear una orden con líneas no es atómico: la cabecera y cada línea son
// sentencias independientes contra el repositorio. El total lo aporta el
// llamador y no se recalcula.
type SalesUseCase struct {
	repo repository.SalesOrderRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(repo repository.SalesOrderRepository) *SalesUseCase {
	return &SalesUseCase{repo: repo}
}

// newOrderNumber genera un consecutivo legible a partir de un fragmento UUID,
// para órdenes que llegan sin número.
func newOrderNumber() string {
	return "PED-" + strings.ToUpper(uuid.New().String()[:8])
}

// Create crea la orden y, si vienen, sus líneas. Status inválido se rechaza.
func (uc *SalesUseCase) Create(in dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !validOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	orderNumber := in.OrderNumber
	if orderNumber == "" {
		orderNumber = newOrderNumber()
	}
	order := &entity.SalesOrder{
		OrderNumber: orderNumber,
		CustomerID:  in.CustomerID,
		Status:      status,
		Subtotal:    in.Subtotal,
		Discount:    in.Discount,
		Total:       in.Total,
		Notes:       in.Notes,
		SellerID:    in.SellerID,
	}
	if in.SaleDate != nil {
		order.SaleDate = *in.SaleDate
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}

	resp := toSalesOrderResponse(order)
	for _, line := range in.Items {
		item := &entity.SalesOrderItem{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Discount:  line.Discount,
			Total:     line.Total,
		}
		if err := uc.repo.CreateItem(item); err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, *toSalesOrderItemResponse(item))
	}
	return resp, nil
}

// GetByID obtiene la orden con sus líneas, o nil, nil si no existe.
func (uc *SalesUseCase) GetByID(id int64) (*dto.SalesOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	resp := toSalesOrderResponse(order)
	items, err := uc.repo.ListItemsByOrder(id)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		resp.Items = append(resp.Items, *toSalesOrderItemResponse(it))
	}
	return resp, nil
}

// List lista las órdenes sin líneas.
func (uc *SalesUseCase) List() (*dto.SalesOrderListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalesOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toSalesOrderResponse(o))
	}
	return &dto.SalesOrderListResponse{Items: items, Total: len(items)}, nil
}

// Update aplica una actualización parcial. nil, nil si el id no existe.
func (uc *SalesUseCase) Update(id int64, in dto.UpdateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	if in.Status != nil && !validOrderStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.Update(id, entity.SalesOrderPatch{
		OrderNumber: in.OrderNumber,
		CustomerID:  in.CustomerID,
		SaleDate:    in.SaleDate,
		Status:      in.Status,
		Subtotal:    in.Subtotal,
		Discount:    in.Discount,
		Total:       in.Total,
		Notes:       in.Notes,
		SellerID:    in.SellerID,
	})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toSalesOrderResponse(order), nil
}

// Delete elimina físicamente la orden y sus líneas. false si no existe.
func (uc *SalesUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

// ListItems devuelve las líneas de una orden, o ErrNotFound si la orden no
// existe (una orden sin líneas devuelve la lista vacía).
func (uc *SalesUseCase) ListItems(orderID int64) ([]dto.SalesOrderItemResponse, error) {
	order, err := uc.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.ListItemsByOrder(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesOrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toSalesOrderItemResponse(it))
	}
	return out, nil
}

// AddItem añade una línea a una orden existente.
func (uc *SalesUseCase) AddItem(orderID int64, in dto.CreateSalesOrderItemRequest) (*dto.SalesOrderItemResponse, error) {
	order, err := uc.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	item := &entity.SalesOrderItem{
		OrderID:   orderID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Discount:  in.Discount,
		Total:     in.Total,
	}
	if err := uc.repo.CreateItem(item); err != nil {
		return nil, err
	}
	return toSalesOrderItemResponse(item), nil
}

// DeleteItem elimina físicamente una línea. false si el id no existe.
func (uc *SalesUseCase) DeleteItem(itemID int64) (bool, error) {
	return uc.repo.DeleteItem(itemID)
}

func validOrderStatus(s string) bool {
	return s == entity.OrderStatusPending || s == entity.OrderStatusPaid || s == entity.OrderStatusCancelled
}

func toSalesOrderResponse(o *entity.SalesOrder) *dto.SalesOrderResponse {
	return &dto.SalesOrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID,
		SaleDate:    o.SaleDate,
		Status:      o.Status,
		Subtotal:    o.Subtotal,
		Discount:    o.Discount,
		Total:       o.Total,
		Notes:       o.Notes,
		SellerID:    o.SellerID,
		CreatedAt:   o.CreatedAt,
	}
}

func toSalesOrderItemResponse(it *entity.SalesOrderItem) *dto.SalesOrderItemResponse {
	return &dto.SalesOrderItemResponse{
		ID:        it.ID,
		OrderID:   it.OrderID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
		Discount:  it.Discount,
		Total:     it.Total,
	}
}
