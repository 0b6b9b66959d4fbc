package repository

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// GetByID devuelve (nil, nil) si no existe; Delete devuelve false si no había fila.
type SupplierRepository interface {
	Create(ctx context.Context, v *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context, page Page) ([]*entity.Supplier, error)
	Update(ctx context.Context, v *entity.Supplier) error
	Delete(ctx context.Context, id int64) (bool, error)
}
