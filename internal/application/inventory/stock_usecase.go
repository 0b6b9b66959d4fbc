package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/inventory"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

// exportPageSize tamaño de página al recorrer todos los productos para exportar.
const exportPageSize = 500

// StockUseCase consultas de stock derivadas del libro. Siempre recalcula desde los
// movimientos: no hay contador en caché.
type StockUseCase struct {
	movRepo     repository.InventoryMovementRepository
	productRepo repository.ProductRepository
	sheet       StockSheetWriter
	card        StockCardRenderer
	metrics     Metrics
	now         func() time.Time
}

// NewStockUseCase construye el caso de uso. metrics puede ser nil.
func NewStockUseCase(
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
	sheet StockSheetWriter,
	card StockCardRenderer,
	metrics Metrics,
) *StockUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &StockUseCase{
		movRepo:     movRepo,
		productRepo: productRepo,
		sheet:       sheet,
		card:        card,
		metrics:     metrics,
		now:         time.Now,
	}
}

// GetStock calcula el stock del producto. No comprueba que el producto exista:
// un producto sin movimientos (o inexistente) devuelve ceros, no un error.
func (uc *StockUseCase) GetStock(ctx context.Context, productID int64) (*dto.StockResponse, error) {
	totals, err := uc.movRepo.TotalsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	uc.metrics.StockQueried("product")
	level := inventory.ComputeStock(productID, totals)
	return &dto.StockResponse{
		ProductID:    level.ProductID,
		CurrentStock: level.CurrentStock,
		StockIn:      level.StockIn,
		StockOut:     level.StockOut,
		Adjustments:  level.Adjustments,
	}, nil
}

// ListStock resumen de stock de una página de productos (orden product_id).
func (uc *StockUseCase) ListStock(ctx context.Context, page dto.PageRequest) ([]dto.StockSummaryResponse, error) {
	products, err := uc.productRepo.List(ctx, repository.Page{Skip: page.Skip, Limit: page.Limit})
	if err != nil {
		return nil, err
	}
	rows, err := uc.rowsFor(ctx, products)
	if err != nil {
		return nil, err
	}
	uc.metrics.StockQueried("summary")
	out := make([]dto.StockSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockSummaryResponse{
			ProductID:     r.Product.ID,
			ProductName:   r.Product.Name,
			UnitOfMeasure: r.Product.UnitOfMeasure,
			CurrentStock:  r.Level.CurrentStock,
			StockIn:       r.Level.StockIn,
			StockOut:      r.Level.StockOut,
			Adjustments:   r.Level.Adjustments,
		})
	}
	return out, nil
}

// ExportStockXLSX genera la hoja de stock de todos los productos.
func (uc *StockUseCase) ExportStockXLSX(ctx context.Context) ([]byte, error) {
	var all []*entity.Product
	for skip := 0; ; skip += exportPageSize {
		page, err := uc.productRepo.List(ctx, repository.Page{Skip: skip, Limit: exportPageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			break
		}
	}
	rows, err := uc.rowsFor(ctx, all)
	if err != nil {
		return nil, err
	}
	uc.metrics.StockQueried("export")
	return uc.sheet.StockSheet(ctx, rows, uc.now())
}

// StockCardPDF kardex del producto: cada movimiento con su saldo acumulado.
// A diferencia de GetStock, aquí el producto debe existir (el documento lleva su nombre).
func (uc *StockUseCase) StockCardPDF(ctx context.Context, productID int64) ([]byte, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	uc.metrics.StockQueried("card")
	return uc.card.StockCardPDF(ctx, StockCard{
		Product:     *product,
		Lines:       inventory.RunningBalance(movements),
		Level:       inventory.ComputeStock(productID, inventory.Accumulate(movements)),
		GeneratedAt: uc.now(),
	})
}

func (uc *StockUseCase) rowsFor(ctx context.Context, products []*entity.Product) ([]StockRow, error) {
	rows := make([]StockRow, 0, len(products))
	if len(products) == 0 {
		return rows, nil
	}
	totals, err := uc.movRepo.TotalsAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		rows = append(rows, StockRow{Product: *p, Level: inventory.ComputeStock(p.ID, totals[p.ID])})
	}
	return rows, nil
}
