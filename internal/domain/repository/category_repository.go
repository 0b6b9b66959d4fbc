package repository

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para ProductCategory (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.ProductCategory) error
	GetByID(ctx context.Context, id int64) (*entity.ProductCategory, error)
	GetByName(ctx context.Context, name string) (*entity.ProductCategory, error)
	List(ctx context.Context, page Page) ([]*entity.ProductCategory, error)
	Update(ctx context.Context, category *entity.ProductCategory) error
	Delete(ctx context.Context, id int64) (bool, error)
}
