package repository

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
// Create inserta el pedido y sus Items; debe ejecutarse dentro de una transacción.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context, page Page) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id int64) (bool, error)
}
