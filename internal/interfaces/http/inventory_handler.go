package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/pkg/config"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// MovementService libro de movimientos (implementado por inventory.MovementUseCase).
type MovementService interface {
	Create(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MovementResponse, error)
	List(ctx context.Context, f dto.MovementFilter, page dto.PageRequest) ([]dto.MovementResponse, error)
	Delete(ctx context.Context, id int64) error
}

// StockService consultas de stock derivado (implementado por inventory.StockUseCase).
type StockService interface {
	GetStock(ctx context.Context, productID int64) (*dto.StockResponse, error)
	ListStock(ctx context.Context, page dto.PageRequest) ([]dto.StockSummaryResponse, error)
	ExportStockXLSX(ctx context.Context) ([]byte, error)
	StockCardPDF(ctx context.Context, productID int64) ([]byte, error)
}

// InventoryHandler maneja movimientos y stock.
type InventoryHandler struct {
	movements MovementService
	stock     StockService
	api       config.APIConfig
	now       func() time.Time
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movements MovementService, stock StockService, api config.APIConfig) *InventoryHandler {
	return &InventoryHandler{movements: movements, stock: stock, api: api, now: time.Now}
}

// CreateMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  IN suma, OUT y SPOILAGE restan, ADJUSTMENT se registra pero no entra en el stock.
// @Description  La referencia al documento origen va como par reference_type (ORDER | PROCUREMENT) + reference_id.
// @Description  Un reference_id sin reference_type (o al revés) responde 400 VALIDATION; sin referencia se omiten ambos.
// @Description  quantity admite como máximo 2 decimales.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/movements [post]
func (h *InventoryHandler) CreateMovement(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.movements.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos
// @Tags         inventory
// @Produce      json
// @Param        product_id      query  int  false  "Filtrar por producto"
// @Param        order_id        query  int  false  "Filtrar por pedido"
// @Param        procurement_id  query  int  false  "Filtrar por compra"
// @Param        skip            query  int  false  "Registros a saltar"  default(0)
// @Param        limit           query  int  false  "Máximo de registros"  default(100)
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	page, err := pageFrom(c, h.api)
	if err != nil {
		return writeError(c, err)
	}
	var f dto.MovementFilter
	if f.ProductID, err = queryID(c, "product_id"); err != nil {
		return writeError(c, err)
	}
	if f.OrderID, err = queryID(c, "order_id"); err != nil {
		return writeError(c, err)
	}
	if f.ProcurementID, err = queryID(c, "procurement_id"); err != nil {
		return writeError(c, err)
	}
	out, err := h.movements.List(c.UserContext(), f, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetMovement godoc
// @Summary      Obtener movimiento por ID
// @Tags         inventory
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/movements/{id} [get]
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	out, err := h.movements.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteMovement godoc
// @Summary      Eliminar movimiento (sin asiento compensatorio)
// @Tags         inventory
// @Param        id   path  int  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/movements/{id} [delete]
func (h *InventoryHandler) DeleteMovement(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	if err := h.movements.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetStock godoc
// @Summary      Stock actual de un producto
// @Description  Sin movimientos devuelve ceros; no comprueba que el producto exista.
// @Tags         inventory
// @Produce      json
// @Param        product_id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/stock/{product_id} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	id, ok := pathID(c, "product_id")
	if !ok {
		return invalidID(c, "product_id")
	}
	out, err := h.stock.GetStock(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListStock godoc
// @Summary      Resumen de stock de los productos
// @Tags         inventory
// @Produce      json
// @Param        skip   query  int  false  "Registros a saltar"  default(0)
// @Param        limit  query  int  false  "Máximo de registros"  default(100)
// @Success      200  {array}  dto.StockSummaryResponse
// @Router       /api/v1/inventory/stock [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	page, err := pageFrom(c, h.api)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.stock.ListStock(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportStock godoc
// @Summary      Exportar stock a Excel
// @Tags         inventory
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/v1/inventory/stock/export.xlsx [get]
func (h *InventoryHandler) ExportStock(c *fiber.Ctx) error {
	out, err := h.stock.ExportStockXLSX(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(fmt.Sprintf("stock_%s.xlsx", h.now().Format("20060102")))
	c.Set(fiber.HeaderContentType, mimeXLSX)
	return c.Send(out)
}

// StockCard godoc
// @Summary      Kardex del producto en PDF
// @Tags         inventory
// @Produce      application/pdf
// @Param        product_id  path  int  true  "ID del producto"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/stock/{product_id}/card.pdf [get]
func (h *InventoryHandler) StockCard(c *fiber.Ctx) error {
	id, ok := pathID(c, "product_id")
	if !ok {
		return invalidID(c, "product_id")
	}
	out, err := h.stock.StockCardPDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, mimePDF)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="kardex_%d.pdf"`, id))
	return c.Send(out)
}
