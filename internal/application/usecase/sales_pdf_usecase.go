package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// OrderLineForPDF línea de la orden enriquecida con los datos del producto,
// lista para imprimirse.
type OrderLineForPDF struct {
	ProductName string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

// SalesOrderPDFGenerator puerto de generación del comprobante en PDF.
// Implementado en infrastructure/pdf con Maroto.
type SalesOrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.SalesOrder, customer *entity.Customer, lines []OrderLineForPDF) ([]byte, error)
}

// SalesPDFUseCase arma los datos del comprobante de una orden y delega el
// dibujo al generador.
type SalesPDFUseCase struct {
	salesRepo    repository.SalesOrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    SalesOrderPDFGenerator
}

// NewSalesPDFUseCase construye el caso de uso.
func NewSalesPDFUseCase(
	salesRepo repository.SalesOrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator SalesOrderPDFGenerator,
) *SalesPDFUseCase {
	return &SalesPDFUseCase{
		salesRepo:    salesRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// Generate produce los bytes del PDF de la orden indicada.
// Devuelve ErrNotFound si la orden no existe.
func (uc *SalesPDFUseCase) Generate(ctx context.Context, orderID int64) ([]byte, error) {
	order, err := uc.salesRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	var customer *entity.Customer
	if order.CustomerID != nil {
		customer, err = uc.customerRepo.GetByID(*order.CustomerID)
		if err != nil {
			return nil, err
		}
	}

	items, err := uc.salesRepo.ListItemsByOrder(orderID)
	if err != nil {
		return nil, err
	}
	lines := make([]OrderLineForPDF, 0, len(items))
	for _, it := range items {
		line := OrderLineForPDF{
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
			Total:     it.Total,
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			line.ProductName = product.Name
			line.Unit = product.Unit
		}
		lines = append(lines, line)
	}

	return uc.generator.GenerateOrderPDF(ctx, order, customer, lines)
}
