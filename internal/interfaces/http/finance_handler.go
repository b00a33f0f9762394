package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
)

// FinanceHandler maneja las peticiones HTTP de transacciones financieras.
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear transacción financiera
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Datos de la transacción"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser income o expense; status pending, paid u overdue"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         transactions
// @Produce      json
// @Param        id   path  int  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *FinanceHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	tx, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if tx == nil {
		return notFound(c, "transacción no encontrada")
	}
	return c.JSON(tx)
}

// List godoc
// @Summary      Listar transacciones
// @Tags         transactions
// @Produce      json
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Actualizar transacción
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la transacción"
// @Param        body  body  dto.UpdateTransactionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [put]
func (h *FinanceHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser income o expense; status pending, paid u overdue"})
		}
		return internalError(c, err)
	}
	if tx == nil {
		return notFound(c, "transacción no encontrada")
	}
	return c.JSON(tx)
}

// Delete godoc
// @Summary      Eliminar transacción (física)
// @Tags         transactions
// @Produce      json
// @Param        id   path  int  true  "ID de la transacción"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return internalError(c, err)
	}
	if !deleted {
		return notFound(c, "transacción no encontrada")
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}
