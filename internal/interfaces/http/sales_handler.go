package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
)

// SalesHandler maneja las peticiones HTTP de órdenes de venta y sus líneas.
type SalesHandler struct {
	uc    *usecase.SalesUseCase
	pdfUC *usecase.SalesPDFUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *usecase.SalesUseCase, pdfUC *usecase.SalesPDFUseCase) *SalesHandler {
	return &SalesHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Crear orden de venta (con líneas opcionales)
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalesOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.SalesOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser pending, paid o cancelled"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una orden con ese número"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetByID godoc
// @Summary      Obtener orden por ID (incluye líneas)
// @Tags         sales
// @Produce      json
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {object}  dto.SalesOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	order, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if order == nil {
		return notFound(c, "orden no encontrada")
	}
	return c.JSON(order)
}

// List godoc
// @Summary      Listar órdenes (sin líneas)
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.SalesOrderListResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Actualizar orden
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la orden"
// @Param        body  body  dto.UpdateSalesOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SalesOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser pending, paid o cancelled"})
		}
		return internalError(c, err)
	}
	if order == nil {
		return notFound(c, "orden no encontrada")
	}
	return c.JSON(order)
}

// Delete godoc
// @Summary      Eliminar orden (física, arrastra sus líneas)
// @Tags         sales
// @Produce      json
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return internalError(c, err)
	}
	if !deleted {
		return notFound(c, "orden no encontrada")
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}

// ListItems godoc
// @Summary      Listar líneas de una orden
// @Tags         sales
// @Produce      json
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {array}   dto.SalesOrderItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/items [get]
func (h *SalesHandler) ListItems(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	items, err := h.uc.ListItems(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "orden no encontrada")
		}
		return internalError(c, err)
	}
	return c.JSON(items)
}

// AddItem godoc
// @Summary      Añadir línea a una orden
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la orden"
// @Param        body  body  dto.CreateSalesOrderItemRequest  true  "Datos de la línea"
// @Success      201   {object}  dto.SalesOrderItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/items [post]
func (h *SalesHandler) AddItem(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	var in dto.CreateSalesOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.AddItem(id, in)
	if err != nil {
		return internalError(c, err)
	}
	if item == nil {
		return notFound(c, "orden no encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// DeleteItem godoc
// @Summary      Eliminar línea de orden (física)
// @Tags         sales
// @Produce      json
// @Param        itemId  path  int  true  "ID de la línea"
// @Success      200     {object}  dto.DeleteResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/sales/items/{itemId} [delete]
func (h *SalesHandler) DeleteItem(c *fiber.Ctx) error {
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return nil
	}
	deleted, err := h.uc.DeleteItem(itemID)
	if err != nil {
		return internalError(c, err)
	}
	if !deleted {
		return notFound(c, "línea no encontrada")
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}

// GetPDF godoc
// @Summary      Comprobante PDF de una orden
// @Tags         sales
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pdf [get]
func (h *SalesHandler) GetPDF(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	pdfBytes, err := h.pdfUC.Generate(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "orden no encontrada")
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="orden.pdf"`)
	return c.Send(pdfBytes)
}
