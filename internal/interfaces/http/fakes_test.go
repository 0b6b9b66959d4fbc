package http_test

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
)

// fakeProducts CRUDService en memoria para productos.
type fakeProducts struct {
	items    map[int64]*dto.ProductResponse
	next     int64
	lastPage dto.PageRequest
	err      error // si no es nil, todas las operaciones fallan con él
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{items: map[int64]*dto.ProductResponse{}}
}

func (f *fakeProducts) Create(_ context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	if in.Name == "" {
		return nil, domain.NewValidationError("product_name", "es obligatorio")
	}
	f.next++
	p := &dto.ProductResponse{ID: f.next, Name: in.Name, IsActive: true}
	f.items[p.ID] = p
	return p, nil
}

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*dto.ProductResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeProducts) List(_ context.Context, page dto.PageRequest) ([]dto.ProductResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastPage = page
	out := make([]dto.ProductResponse, 0, len(f.items))
	for id := int64(1); id <= f.next; id++ {
		if p, ok := f.items[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProducts) Update(_ context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := f.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	return p, nil
}

func (f *fakeProducts) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// fakeCategories solo distingue que la ruta de categorías no cae en /products/:id.
type fakeCategories struct{}

func (fakeCategories) Create(_ context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	return &dto.CategoryResponse{ID: 1, Name: in.Name}, nil
}
func (fakeCategories) GetByID(_ context.Context, id int64) (*dto.CategoryResponse, error) {
	return &dto.CategoryResponse{ID: id, Name: "Verduras"}, nil
}
func (fakeCategories) List(context.Context, dto.PageRequest) ([]dto.CategoryResponse, error) {
	return []dto.CategoryResponse{{ID: 1, Name: "Verduras"}}, nil
}
func (fakeCategories) Update(_ context.Context, id int64, _ dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	return &dto.CategoryResponse{ID: id}, nil
}
func (fakeCategories) Delete(context.Context, int64) error { return domain.ErrConflict }

type fakeMovements struct {
	created    []dto.CreateMovementRequest
	lastFilter dto.MovementFilter
	lastPage   dto.PageRequest
}

func (f *fakeMovements) Create(_ context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if in.Quantity == nil {
		return nil, domain.NewValidationError("quantity", "es obligatorio")
	}
	f.created = append(f.created, in)
	return &dto.MovementResponse{ID: int64(len(f.created)), ProductID: in.ProductID, MovementType: in.MovementType, Quantity: *in.Quantity}, nil
}

func (f *fakeMovements) GetByID(_ context.Context, id int64) (*dto.MovementResponse, error) {
	if id > int64(len(f.created)) {
		return nil, domain.ErrNotFound
	}
	return &dto.MovementResponse{ID: id}, nil
}

func (f *fakeMovements) List(_ context.Context, filter dto.MovementFilter, page dto.PageRequest) ([]dto.MovementResponse, error) {
	f.lastFilter, f.lastPage = filter, page
	return []dto.MovementResponse{}, nil
}

func (f *fakeMovements) Delete(_ context.Context, id int64) error {
	if id > int64(len(f.created)) {
		return domain.ErrNotFound
	}
	return nil
}

type fakeStock struct {
	err error
}

func (f *fakeStock) GetStock(_ context.Context, productID int64) (*dto.StockResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.StockResponse{ProductID: productID}, nil
}

func (f *fakeStock) ListStock(context.Context, dto.PageRequest) ([]dto.StockSummaryResponse, error) {
	return []dto.StockSummaryResponse{}, nil
}

func (f *fakeStock) ExportStockXLSX(context.Context) ([]byte, error) {
	return []byte("PK\x03\x04"), nil
}

func (f *fakeStock) StockCardPDF(_ context.Context, productID int64) ([]byte, error) {
	if productID == 404 {
		return nil, domain.ErrNotFound
	}
	return []byte("%PDF-1.3"), nil
}

type fakeDashboard struct {
	err error
}

func (f fakeDashboard) GetSummary(context.Context) (*dto.InventoryDashboardDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.InventoryDashboardDTO{DateLabel: "Febrero 2026", TopSpoiled: []dto.TopProductDTO{}}, nil
}
