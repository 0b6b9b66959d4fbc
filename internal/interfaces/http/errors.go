package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
)

// Códigos de error expuestos en ErrorResponse.Code.
const (
	codeValidation       = "VALIDATION"
	codeInvalidBody      = "INVALID_BODY"
	codeInvalidID        = "INVALID_ID"
	codeNotFound         = "NOT_FOUND"
	codeConflict         = "CONFLICT"
	codeStoreUnavailable = "STORE_UNAVAILABLE"
	codeInternal         = "INTERNAL"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// writeError traduce un error de dominio a status + ErrorResponse.
// Los errores internos no exponen el detalle: se registran en el log de la petición.
func writeError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: codeValidation, Message: vErr.Error(), Field: vErr.Field})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: codeValidation, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: codeNotFound, Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: codeConflict, Message: err.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.Locals(localsErr, err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: codeStoreUnavailable, Message: "almacenamiento no disponible"})
	}
	c.Locals(localsErr, err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: codeInternal, Message: "error interno"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: codeInvalidBody, Message: "cuerpo inválido"})
}

func invalidID(c *fiber.Ctx, param string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: codeInvalidID, Message: param + " debe ser un entero positivo", Field: param})
}

// ErrorHandler respuesta JSON para errores que llegan a Fiber (rutas inexistentes, 405, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fErr *fiber.Error
	if errors.As(err, &fErr) {
		code = fErr.Code
	}
	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).JSON(dto.ErrorResponse{Code: codeNotFound, Message: "ruta no encontrada"})
	case fiber.StatusMethodNotAllowed:
		return c.Status(code).JSON(dto.ErrorResponse{Code: codeMethodNotAllowed, Message: "método no permitido"})
	case fiber.StatusInternalServerError:
		c.Locals(localsErr, err)
		return c.Status(code).JSON(dto.ErrorResponse{Code: codeInternal, Message: "error interno"})
	}
	return c.Status(code).JSON(dto.ErrorResponse{Code: codeValidation, Message: err.Error()})
}
