// Package http contiene los handlers Fiber y el registro de rutas. Cada
// handler traduce uniformemente: parsea entrada, invoca el caso de uso y
// mapea sentinelas de dominio a códigos HTTP.
package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
)

// parseIDParam lee un parámetro de ruta como id entero positivo.
// Devuelve 0 y responde 400 si no es válido.
func parseIDParam(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_ID", Message: name + " debe ser un entero positivo",
		})
		return 0, false
	}
	return id, true
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Code: "NOT_FOUND", Message: message,
	})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
