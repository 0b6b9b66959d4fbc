package repository

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment (DIP).
// GetByID devuelve (nil, nil) si no existe; Delete devuelve false si no había fila.
type PaymentRepository interface {
	Create(ctx context.Context, v *entity.Payment) error
	GetByID(ctx context.Context, id int64) (*entity.Payment, error)
	List(ctx context.Context, page Page) ([]*entity.Payment, error)
	Update(ctx context.Context, v *entity.Payment) error
	Delete(ctx context.Context, id int64) (bool, error)
}
