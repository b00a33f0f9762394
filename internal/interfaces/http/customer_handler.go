package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	customer, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if customer == nil {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(customer)
}

// List godoc
// @Summary      Listar clientes activos
// @Tags         customers
// @Produce      json
// @Success      200  {object}  dto.CustomerListResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Update(id, in)
	if err != nil {
		return internalError(c, err)
	}
	if customer == nil {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(customer)
}

// Delete godoc
// @Summary      Desactivar cliente (baja lógica)
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return internalError(c, err)
	}
	if !deleted {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}
