package repository

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// GetByID devuelve (nil, nil) si no existe; Delete devuelve false si no había fila.
type CustomerRepository interface {
	Create(ctx context.Context, v *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	List(ctx context.Context, page Page) ([]*entity.Customer, error)
	Update(ctx context.Context, v *entity.Customer) error
	Delete(ctx context.Context, id int64) (bool, error)
}
