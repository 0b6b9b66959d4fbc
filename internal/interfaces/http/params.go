package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/pkg/config"
)

// pathID lee un parámetro de ruta entero positivo.
func pathID(c *fiber.Ctx, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pageFrom lee skip/limit y los normaliza con los límites configurados.
func pageFrom(c *fiber.Ctx, api config.APIConfig) (dto.PageRequest, error) {
	var p dto.PageRequest
	var err error
	if p.Skip, err = queryInt(c, "skip"); err != nil {
		return p, err
	}
	if p.Limit, err = queryInt(c, "limit"); err != nil {
		return p, err
	}
	if err := p.Normalize(api.DefaultLimit, api.MaxLimit); err != nil {
		return p, err
	}
	return p, nil
}

func queryInt(c *fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "debe ser un entero")
	}
	return v, nil
}

// queryID filtro opcional por id (nil si no viene).
func queryID(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, domain.NewValidationError(name, "debe ser un entero positivo")
	}
	return &v, nil
}
