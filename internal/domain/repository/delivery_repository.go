package repository

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

// DeliveryRepository define el puerto de persistencia para Delivery (DIP).
// GetByID devuelve (nil, nil) si no existe; Delete devuelve false si no había fila.
type DeliveryRepository interface {
	Create(ctx context.Context, v *entity.Delivery) error
	GetByID(ctx context.Context, id int64) (*entity.Delivery, error)
	List(ctx context.Context, page Page) ([]*entity.Delivery, error)
	Update(ctx context.Context, v *entity.Delivery) error
	Delete(ctx context.Context, id int64) (bool, error)
}
