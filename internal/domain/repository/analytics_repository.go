package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/inventory"
)

// ProductQuantity cantidad acumulada de un producto en un período.
type ProductQuantity struct {
	ProductID   int64
	ProductName string
	Quantity    decimal.Decimal
}

// AnalyticsRepository consultas de lectura sobre el libro de movimientos por período.
// Los rangos son [from, to) sobre movement_date.
type AnalyticsRepository interface {
	// TotalsBetween suma por tipo de movimiento de todos los productos en el período.
	TotalsBetween(ctx context.Context, from, to time.Time) (inventory.Totals, error)

	// TopProducts devuelve los limit productos con mayor cantidad del tipo dado, de mayor a menor.
	TopProducts(ctx context.Context, mt entity.MovementType, from, to time.Time, limit int) ([]ProductQuantity, error)
}
