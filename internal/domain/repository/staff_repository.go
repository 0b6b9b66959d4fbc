package repository

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

// StaffRepository define el puerto de persistencia para Staff (DIP).
// GetByID devuelve (nil, nil) si no existe; Delete devuelve false si no había fila.
type StaffRepository interface {
	Create(ctx context.Context, v *entity.Staff) error
	GetByID(ctx context.Context, id int64) (*entity.Staff, error)
	List(ctx context.Context, page Page) ([]*entity.Staff, error)
	Update(ctx context.Context, v *entity.Staff) error
	Delete(ctx context.Context, id int64) (bool, error)
}
