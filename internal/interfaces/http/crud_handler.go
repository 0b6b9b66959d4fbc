package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/pkg/config"
)

// CRUDService contrato común de los casos de uso de catálogo y documentos.
// C = petición de alta, U = petición de actualización parcial, R = respuesta.
type CRUDService[C, U, R any] interface {
	Create(ctx context.Context, in C) (*R, error)
	GetByID(ctx context.Context, id int64) (*R, error)
	List(ctx context.Context, page dto.PageRequest) ([]R, error)
	Update(ctx context.Context, id int64, in U) (*R, error)
	Delete(ctx context.Context, id int64) error
}

// CRUDHandler expone un CRUDService como recurso REST:
// POST / (201), GET / (skip, limit), GET /:id, PUT /:id, DELETE /:id (204).
type CRUDHandler[C, U, R any] struct {
	svc CRUDService[C, U, R]
	api config.APIConfig
}

// NewCRUDHandler construye el handler.
func NewCRUDHandler[C, U, R any](svc CRUDService[C, U, R], api config.APIConfig) *CRUDHandler[C, U, R] {
	return &CRUDHandler[C, U, R]{svc: svc, api: api}
}

// Mount registra las cinco rutas sobre el grupo.
func (h *CRUDHandler[C, U, R]) Mount(r fiber.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

// Create godoc
// @Summary      Crear recurso
// @Tags         crud
// @Accept       json
// @Produce      json
// @Success      201   {object}  object
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/products [post]
// @Router       /api/v1/products/categories [post]
// @Router       /api/v1/suppliers [post]
// @Router       /api/v1/customers [post]
// @Router       /api/v1/staff [post]
// @Router       /api/v1/orders [post]
// @Router       /api/v1/procurements [post]
// @Router       /api/v1/deliveries [post]
// @Router       /api/v1/payments [post]
func (h *CRUDHandler[C, U, R]) Create(c *fiber.Ctx) error {
	var in C
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar recursos (orden por id)
// @Tags         crud
// @Produce      json
// @Param        skip   query  int  false  "Registros a saltar"  default(0)
// @Param        limit  query  int  false  "Máximo de registros"  default(100)
// @Success      200    {array}   object
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/v1/products [get]
// @Router       /api/v1/products/categories [get]
// @Router       /api/v1/suppliers [get]
// @Router       /api/v1/customers [get]
// @Router       /api/v1/staff [get]
// @Router       /api/v1/orders [get]
// @Router       /api/v1/procurements [get]
// @Router       /api/v1/deliveries [get]
// @Router       /api/v1/payments [get]
func (h *CRUDHandler[C, U, R]) List(c *fiber.Ctx) error {
	page, err := pageFrom(c, h.api)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener recurso por ID
// @Tags         crud
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  object
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [get]
// @Router       /api/v1/suppliers/{id} [get]
// @Router       /api/v1/customers/{id} [get]
// @Router       /api/v1/staff/{id} [get]
// @Router       /api/v1/orders/{id} [get]
// @Router       /api/v1/procurements/{id} [get]
// @Router       /api/v1/deliveries/{id} [get]
// @Router       /api/v1/payments/{id} [get]
func (h *CRUDHandler[C, U, R]) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar recurso (parcial: solo los campos enviados)
// @Tags         crud
// @Accept       json
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  object
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [put]
// @Router       /api/v1/suppliers/{id} [put]
// @Router       /api/v1/customers/{id} [put]
// @Router       /api/v1/staff/{id} [put]
// @Router       /api/v1/orders/{id} [put]
// @Router       /api/v1/procurements/{id} [put]
// @Router       /api/v1/deliveries/{id} [put]
// @Router       /api/v1/payments/{id} [put]
func (h *CRUDHandler[C, U, R]) Update(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	var in U
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar recurso
// @Tags         crud
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [delete]
// @Router       /api/v1/suppliers/{id} [delete]
// @Router       /api/v1/customers/{id} [delete]
// @Router       /api/v1/staff/{id} [delete]
// @Router       /api/v1/orders/{id} [delete]
// @Router       /api/v1/procurements/{id} [delete]
// @Router       /api/v1/deliveries/{id} [delete]
// @Router       /api/v1/payments/{id} [delete]
func (h *CRUDHandler[C, U, R]) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
