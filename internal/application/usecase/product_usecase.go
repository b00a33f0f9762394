package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos más la consulta de stock
// bajo. La baja es lógica.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto activo. Unit vacío queda en "UN"; Cost ausente en 0.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	cost := decimal.Zero
	if in.Cost != nil {
		cost = *in.Cost
	}
	unit := in.Unit
	if unit == "" {
		unit = entity.DefaultUnit
	}
	product := &entity.Product{
		Name:         in.Name,
		Code:         in.Code,
		Description:  in.Description,
		Price:        in.Price,
		Cost:         cost,
		Category:     in.Category,
		Unit:         unit,
		CurrentStock: in.CurrentStock,
		MinimumStock: in.MinimumStock,
		Active:       true,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto (incluso desactivado), o nil, nil.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos. El filtrado por active depende del almacenamiento.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// ListLowStock lista los productos activos con stock en o bajo el mínimo.
func (uc *ProductUseCase) ListLowStock() (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// Update aplica una actualización parcial. nil, nil si el id no existe.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.Update(id, entity.ProductPatch{
		Name:         in.Name,
		Code:         in.Code,
		Description:  in.Description,
		Price:        in.Price,
		Cost:         in.Cost,
		Category:     in.Category,
		Unit:         in.Unit,
		CurrentStock: in.CurrentStock,
		MinimumStock: in.MinimumStock,
		Active:       in.Active,
	})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Delete desactiva el producto (baja lógica). false si el id no existe.
func (uc *ProductUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Code:         p.Code,
		Description:  p.Description,
		Price:        p.Price,
		Cost:         p.Cost,
		Category:     p.Category,
		Unit:         p.Unit,
		CurrentStock: p.CurrentStock,
		MinimumStock: p.MinimumStock,
		LowStock:     p.LowStock(),
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
	}
}

func toProductListResponse(list []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}
