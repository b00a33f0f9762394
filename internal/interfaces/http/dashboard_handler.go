package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestion-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetMetrics godoc
// @Summary      Métricas del dashboard
// @Description  Seis cifras recalculadas en cada invocación: ventas del mes
// @Description  (órdenes pagadas), órdenes pendientes, stock total activo,
// @Description  clientes activos, productos bajo mínimo y transacciones vencidas.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardMetricsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/metrics [get]
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := h.uc.GetMetrics(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(metrics)
}
