package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/terrafoods-ems/pkg/logger"
)

// localsErr clave de Locals donde writeError deja el error interno para el log de acceso.
const localsErr = "handler_error"

// HTTPObserver recibe la duración y el status de cada petición (infrastructure/metrics).
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// RequestLogger registra cada petición: método, ruta, status, latencia y request id.
// 5xx se registran como error con el detalle que el cliente no ve.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := statusOf(c, err)

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		if cause, ok := c.Locals(localsErr).(error); ok {
			ev = ev.AnErr("cause", cause)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("request")
		return err
	}
}

// Metrics observa cada petición con la plantilla de ruta (no la URL concreta).
func Metrics(obs HTTPObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		obs.ObserveHTTP(c.Method(), c.Route().Path, statusOf(c, err), time.Since(start))
		return err
	}
}

// statusOf status final: si el handler devolvió error, aún no lo ha escrito el ErrorHandler.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fErr *fiber.Error
	if errors.As(err, &fErr) {
		return fErr.Code
	}
	return fiber.StatusInternalServerError
}
