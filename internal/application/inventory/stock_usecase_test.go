package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	appinventory "github.com/jhoicas/terrafoods-ems/internal/application/inventory"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s got %s", want, got)
}

type stockFixture struct {
	ledger    *fakeLedger
	products  *fakeProducts
	movements *appinventory.MovementUseCase
	stock     *appinventory.StockUseCase
	sheet     *captureSheet
	card      *captureCard
	metrics   *fakeMetrics
}

func newStockFixture(products ...*entity.Product) *stockFixture {
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	f := &stockFixture{
		ledger:   newFakeLedger(ids...),
		products: &fakeProducts{items: products},
		sheet:    &captureSheet{},
		card:     &captureCard{},
		metrics:  newFakeMetrics(),
	}
	f.movements = appinventory.NewMovementUseCase(f.ledger, f.metrics, nil)
	f.stock = appinventory.NewStockUseCase(f.ledger, f.products, f.sheet, f.card, f.metrics)
	return f
}

func (f *stockFixture) record(t *testing.T, productID int64, mt entity.MovementType, q string) int64 {
	t.Helper()
	out, err := f.movements.Create(context.Background(), movement(productID, mt, q))
	require.NoError(t, err)
	return out.ID
}

func TestStockUseCase_SinMovimientosEsCero(t *testing.T) {
	f := newStockFixture()

	out, err := f.stock.GetStock(context.Background(), 404)

	require.NoError(t, err)
	assert.Equal(t, int64(404), out.ProductID)
	assertDec(t, "0", out.CurrentStock)
	assertDec(t, "0", out.StockIn)
	assertDec(t, "0", out.StockOut)
	assert.Equal(t, 1, f.metrics.queries["product"])
}

func TestStockUseCase_EscenarioEntradaSalidaMerma(t *testing.T) {
	f := newStockFixture(&entity.Product{ID: 7, Name: "Tomate"})
	f.record(t, 7, entity.MovementTypeIN, "100")
	f.record(t, 7, entity.MovementTypeOUT, "30")
	f.record(t, 7, entity.MovementTypeSPOILAGE, "5")

	out, err := f.stock.GetStock(context.Background(), 7)

	require.NoError(t, err)
	assertDec(t, "100", out.StockIn)
	assertDec(t, "35", out.StockOut)
	assertDec(t, "65", out.CurrentStock)
}

func TestStockUseCase_AjusteExcluidoDelStock(t *testing.T) {
	f := newStockFixture(&entity.Product{ID: 3, Name: "Kale"})
	f.record(t, 3, entity.MovementTypeADJUSTMENT, "10")

	out, err := f.stock.GetStock(context.Background(), 3)

	require.NoError(t, err)
	assertDec(t, "0", out.CurrentStock)
	assertDec(t, "10", out.Adjustments)
}

func TestStockUseCase_BorrarMovimientoCambiaElStock(t *testing.T) {
	f := newStockFixture(&entity.Product{ID: 7, Name: "Tomate"})
	ctx := context.Background()
	f.record(t, 7, entity.MovementTypeIN, "100")
	out := f.record(t, 7, entity.MovementTypeOUT, "30")

	before, err := f.stock.GetStock(ctx, 7)
	require.NoError(t, err)
	assertDec(t, "70", before.CurrentStock)

	require.NoError(t, f.movements.Delete(ctx, out))
	assert.Equal(t, 1, f.metrics.deleted)

	after, err := f.stock.GetStock(ctx, 7)
	require.NoError(t, err)
	assertDec(t, "100", after.CurrentStock)
	assertDec(t, "0", after.StockOut)
}

func TestStockUseCase_ListStockIncluyeProductosSinMovimientos(t *testing.T) {
	f := newStockFixture(&entity.Product{ID: 1, Name: "Tomate"}, &entity.Product{ID: 2, Name: "Cebolla"})
	f.record(t, 1, entity.MovementTypeIN, "12.50")

	list, err := f.stock.ListStock(context.Background(), dto.PageRequest{Limit: 100})

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Tomate", list[0].ProductName)
	assertDec(t, "12.5", list[0].CurrentStock)
	assertDec(t, "0", list[1].CurrentStock)
}

func TestStockUseCase_ExportRecorreTodasLasPaginas(t *testing.T) {
	products := make([]*entity.Product, 0, 501)
	for i := int64(1); i <= 501; i++ {
		products = append(products, &entity.Product{ID: i, Name: "p"})
	}
	f := newStockFixture(products...)
	f.record(t, 501, entity.MovementTypeIN, "3")

	out, err := f.stock.ExportStockXLSX(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), out)
	require.Len(t, f.sheet.rows, 501)
	assertDec(t, "3", f.sheet.rows[500].Level.CurrentStock)
}

func TestStockUseCase_KardexCoincideConElStock(t *testing.T) {
	f := newStockFixture(&entity.Product{ID: 7, Name: "Tomate"})
	f.record(t, 7, entity.MovementTypeIN, "100")
	f.record(t, 7, entity.MovementTypeOUT, "30")
	f.record(t, 7, entity.MovementTypeADJUSTMENT, "4")
	f.record(t, 7, entity.MovementTypeSPOILAGE, "5")
	ctx := context.Background()

	pdf, err := f.stock.StockCardPDF(ctx, 7)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	card := f.card.card
	assert.Equal(t, "Tomate", card.Product.Name)
	require.Len(t, card.Lines, 4)
	stock, err := f.stock.GetStock(ctx, 7)
	require.NoError(t, err)
	assertDec(t, stock.CurrentStock.String(), card.Lines[3].Balance)
	assertDec(t, "65", card.Level.CurrentStock)
}

func TestStockUseCase_KardexProductoInexistente(t *testing.T) {
	f := newStockFixture()

	_, err := f.stock.StockCardPDF(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockUseCase_FechaDeGeneracion(t *testing.T) {
	f := newStockFixture(&entity.Product{ID: 1, Name: "x"})
	_, err := f.stock.StockCardPDF(context.Background(), 1)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), f.card.card.GeneratedAt, time.Minute)
}
