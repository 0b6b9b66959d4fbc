package repository

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

// ProcurementRepository define el puerto de persistencia para Procurement y sus líneas.
type ProcurementRepository interface {
	Create(ctx context.Context, p *entity.Procurement) error
	GetByID(ctx context.Context, id int64) (*entity.Procurement, error)
	List(ctx context.Context, page Page) ([]*entity.Procurement, error)
	Update(ctx context.Context, p *entity.Procurement) error
	Delete(ctx context.Context, id int64) (bool, error)
}
