package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/inventory"
)

// Metrics contadores del motor de inventario (implementado en infrastructure/metrics).
type Metrics interface {
	MovementRecorded(t entity.MovementType)
	MovementDeleted(t entity.MovementType)
	StockQueried(scope string)
}

type noopMetrics struct{}

func (noopMetrics) MovementRecorded(entity.MovementType) {}
func (noopMetrics) MovementDeleted(entity.MovementType)  {}
func (noopMetrics) StockQueried(string)                  {}

// StockRow fila del resumen de stock usada por los exportadores.
type StockRow struct {
	Product entity.Product
	Level   entity.StockLevel
}

// StockSheetWriter genera la hoja de cálculo del resumen de stock.
type StockSheetWriter interface {
	StockSheet(ctx context.Context, rows []StockRow, generatedAt time.Time) ([]byte, error)
}

// StockCard datos del kardex de un producto: movimientos en orden cronológico con saldo.
type StockCard struct {
	Product     entity.Product
	Lines       []inventory.BalanceLine
	Level       entity.StockLevel
	GeneratedAt time.Time
}

// StockCardRenderer genera el PDF del kardex.
type StockCardRenderer interface {
	StockCardPDF(ctx context.Context, card StockCard) ([]byte, error)
}
