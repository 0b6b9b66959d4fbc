package repository

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si no existe; Delete devuelve false si no había fila.
type ProductRepository interface {
	Create(ctx context.Context, v *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context, page Page) ([]*entity.Product, error)
	Update(ctx context.Context, v *entity.Product) error
	Delete(ctx context.Context, id int64) (bool, error)
}
