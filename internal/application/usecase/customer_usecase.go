package usecase

import (
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes. La baja es lógica.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente activo.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := &entity.Customer{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Document: in.Document,
		Address:  in.Address,
		City:     in.City,
		State:    in.State,
		ZipCode:  in.ZipCode,
		Active:   true,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente (incluso desactivado), o nil, nil.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes. El filtrado por active depende del almacenamiento.
func (uc *CustomerUseCase) List() (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Total: len(items)}, nil
}

// Update aplica una actualización parcial. nil, nil si el id no existe.
func (uc *CustomerUseCase) Update(id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.Update(id, entity.CustomerPatch{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Document: in.Document,
		Address:  in.Address,
		City:     in.City,
		State:    in.State,
		ZipCode:  in.ZipCode,
		Active:   in.Active,
	})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// Delete desactiva el cliente (baja lógica). false si el id no existe.
func (uc *CustomerUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Document:  c.Document,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
}
