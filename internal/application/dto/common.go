package dto

import "github.com/jhoicas/terrafoods-ems/internal/domain"

// PageRequest paginación skip/limit de los listados.
type PageRequest struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// Normalize aplica el límite por defecto y recorta al máximo configurado.
// Valores negativos son un error de validación.
func (p *PageRequest) Normalize(defaultLimit, maxLimit int) error {
	if p.Skip < 0 {
		return domain.NewValidationError("skip", "no puede ser negativo")
	}
	if p.Limit < 0 {
		return domain.NewValidationError("limit", "no puede ser negativo")
	}
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return nil
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// WelcomeResponse respuesta de GET /.
type WelcomeResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
	Version string `json:"version"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
