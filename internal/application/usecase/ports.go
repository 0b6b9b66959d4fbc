package usecase

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/application/validation"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD con repositorios atados a ella.
// Pedidos y compras se crean con sus líneas de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		procurementRepo repository.ProcurementRepository,
	) error) error
}

func toPage(p dto.PageRequest) repository.Page {
	return repository.Page{Skip: p.Skip, Limit: p.Limit}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// requiredName limpia el nombre y falla si queda vacío.
func requiredName(field, raw string) (string, error) {
	name := validation.CleanName(raw)
	if name == "" {
		return "", domain.NewValidationError(field, "es obligatorio")
	}
	return name, nil
}

// notFoundOrNil convierte el (false, nil) de Delete en ErrNotFound.
func notFoundOrNil(found bool, err error) error {
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}
