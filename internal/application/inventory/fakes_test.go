package inventory_test

import (
	"context"
	"sort"
	"time"

	appinventory "github.com/jhoicas/terrafoods-ems/internal/application/inventory"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/inventory"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

// fakeLedger libro en memoria; valida la FK de producto como haría PostgreSQL y
// guarda la cantidad redondeada a 2 decimales como NUMERIC(10,2). Los totales se
// agregan en Go con inventory.Accumulate; el SUM ... GROUP BY del repositorio real
// no se ejercita aquí.
type fakeLedger struct {
	movements map[int64]*entity.InventoryMovement
	products  map[int64]bool
	nextID    int64
	creates   int
}

func newFakeLedger(productIDs ...int64) *fakeLedger {
	l := &fakeLedger{movements: map[int64]*entity.InventoryMovement{}, products: map[int64]bool{}}
	for _, id := range productIDs {
		l.products[id] = true
	}
	return l
}

func (l *fakeLedger) Create(_ context.Context, m *entity.InventoryMovement) error {
	l.creates++
	if !l.products[m.ProductID] {
		return domain.NewValidationError("product_id", "hace referencia a un registro inexistente")
	}
	l.nextID++
	m.ID = l.nextID
	m.CreatedAt = time.Now()
	cp := *m
	cp.Quantity = cp.Quantity.Round(2)
	l.movements[m.ID] = &cp
	return nil
}

func (l *fakeLedger) GetByID(_ context.Context, id int64) (*entity.InventoryMovement, error) {
	m, ok := l.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (l *fakeLedger) sorted() []*entity.InventoryMovement {
	list := make([]*entity.InventoryMovement, 0, len(l.movements))
	for _, m := range l.movements {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (l *fakeLedger) List(_ context.Context, f repository.MovementFilter, p repository.Page) ([]*entity.InventoryMovement, error) {
	out := make([]*entity.InventoryMovement, 0)
	skipped := 0
	for _, m := range l.sorted() {
		if f.ProductID != nil && m.ProductID != *f.ProductID {
			continue
		}
		if f.OrderID != nil && (m.Reference.OrderID() == nil || *m.Reference.OrderID() != *f.OrderID) {
			continue
		}
		if f.ProcurementID != nil && (m.Reference.ProcurementID() == nil || *m.Reference.ProcurementID() != *f.ProcurementID) {
			continue
		}
		if skipped < p.Skip {
			skipped++
			continue
		}
		if len(out) == p.Limit {
			break
		}
		out = append(out, m)
	}
	return out, nil
}

func (l *fakeLedger) ListByProduct(_ context.Context, productID int64) ([]entity.InventoryMovement, error) {
	out := make([]entity.InventoryMovement, 0)
	for _, m := range l.sorted() {
		if m.ProductID == productID {
			out = append(out, *m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MovementDate.Before(out[j].MovementDate) })
	return out, nil
}

func (l *fakeLedger) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := l.movements[id]
	delete(l.movements, id)
	return ok, nil
}

func (l *fakeLedger) TotalsByProduct(ctx context.Context, productID int64) (inventory.Totals, error) {
	movs, _ := l.ListByProduct(ctx, productID)
	return inventory.Accumulate(movs), nil
}

func (l *fakeLedger) TotalsAll(ctx context.Context) (map[int64]inventory.Totals, error) {
	out := map[int64]inventory.Totals{}
	for _, m := range l.sorted() {
		if out[m.ProductID] == nil {
			out[m.ProductID], _ = l.TotalsByProduct(ctx, m.ProductID)
		}
	}
	return out, nil
}

type fakeProducts struct {
	items []*entity.Product
}

func (f *fakeProducts) Create(context.Context, *entity.Product) error { return nil }

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range f.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) List(_ context.Context, p repository.Page) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for i := p.Skip; i < len(f.items) && len(out) < p.Limit; i++ {
		out = append(out, f.items[i])
	}
	return out, nil
}

func (f *fakeProducts) Update(context.Context, *entity.Product) error { return nil }
func (f *fakeProducts) Delete(context.Context, int64) (bool, error)  { return false, nil }

type fakeMetrics struct {
	recorded map[entity.MovementType]int
	deleted  int
	queries  map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{recorded: map[entity.MovementType]int{}, queries: map[string]int{}}
}

func (m *fakeMetrics) MovementRecorded(t entity.MovementType) { m.recorded[t]++ }
func (m *fakeMetrics) MovementDeleted(entity.MovementType)    { m.deleted++ }
func (m *fakeMetrics) StockQueried(scope string)              { m.queries[scope]++ }

type captureSheet struct {
	rows []appinventory.StockRow
}

func (c *captureSheet) StockSheet(_ context.Context, rows []appinventory.StockRow, _ time.Time) ([]byte, error) {
	c.rows = rows
	return []byte("xlsx"), nil
}

type captureCard struct {
	card appinventory.StockCard
}

func (c *captureCard) StockCardPDF(_ context.Context, card appinventory.StockCard) ([]byte, error) {
	c.card = card
	return []byte("%PDF"), nil
}
