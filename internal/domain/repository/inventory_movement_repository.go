package repository

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/inventory"
)

// MovementFilter filtros opcionales del listado de movimientos.
type MovementFilter struct {
	ProductID     *int64
	OrderID       *int64
	ProcurementID *int64
}

// InventoryMovementRepository define el puerto del libro de movimientos (solo inserción y borrado).
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	GetByID(ctx context.Context, id int64) (*entity.InventoryMovement, error)
	List(ctx context.Context, filter MovementFilter, page Page) ([]*entity.InventoryMovement, error)
	// ListByProduct devuelve todos los movimientos del producto por movement_date, id.
	ListByProduct(ctx context.Context, productID int64) ([]entity.InventoryMovement, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// TotalsByProduct suma cantidades por tipo; sin movimientos devuelve un mapa vacío.
	TotalsByProduct(ctx context.Context, productID int64) (inventory.Totals, error)
	// TotalsAll suma cantidades por producto y tipo para todos los productos con movimientos.
	TotalsAll(ctx context.Context) (map[int64]inventory.Totals, error)
}
