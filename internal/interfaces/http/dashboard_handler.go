package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
)

// DashboardService resumen de movimientos (implementado por analytics.DashboardUseCase).
type DashboardService interface {
	GetSummary(ctx context.Context) (*dto.InventoryDashboardDTO, error)
}

// DashboardHandler maneja el endpoint del dashboard de inventario.
type DashboardHandler struct {
	uc DashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc DashboardService) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve entradas, salidas y mermas del día y del mes en curso.
// GET /api/v1/inventory/dashboard
//
// Respuesta: InventoryDashboardDTO (today, month, spoilage_rate, top_spoiled[5], date_label).
// No requiere parámetros; las fechas se calculan en el servidor.
//
// @Summary      Dashboard de inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryDashboardDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
