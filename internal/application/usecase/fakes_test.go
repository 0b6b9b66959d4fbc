package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

// page aplica skip/limit sobre una lista ya ordenada por ID.
func page[T any](list []*T, p repository.Page) []*T {
	out := make([]*T, 0)
	for i := p.Skip; i < len(list) && len(out) < p.Limit; i++ {
		out = append(out, list[i])
	}
	return out
}

type fakeProductRepo struct {
	items   map[int64]*entity.Product
	nextID  int64
	creates int
	err     error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[int64]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.creates++
	if r.err != nil {
		return r.err
	}
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(_ context.Context, p repository.Page) ([]*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		list = append(list, r.items[id])
	}
	return page(list, p), nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.items[p.ID]; !ok {
		return nil
	}
	now := time.Now()
	p.UpdatedAt = &now
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

type fakeCategoryRepo struct {
	items  map[int64]*entity.ProductCategory
	nextID int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[int64]*entity.ProductCategory{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.ProductCategory) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.ProductCategory, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.ProductCategory, error) {
	for _, c := range r.items {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(_ context.Context, p repository.Page) ([]*entity.ProductCategory, error) {
	list := make([]*entity.ProductCategory, 0, len(r.items))
	for id := int64(1); id <= r.nextID; id++ {
		if c, ok := r.items[id]; ok {
			list = append(list, c)
		}
	}
	return page(list, p), nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.ProductCategory) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

type fakeOrderRepo struct {
	items  map[int64]*entity.Order
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{items: map[int64]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.nextID++
	o.ID = r.nextID
	for i := range o.Items {
		o.Items[i].ID = int64(i + 1)
		o.Items[i].OrderID = o.ID
	}
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) List(_ context.Context, p repository.Page) ([]*entity.Order, error) {
	list := make([]*entity.Order, 0, len(r.items))
	for id := int64(1); id <= r.nextID; id++ {
		if o, ok := r.items[id]; ok {
			list = append(list, o)
		}
	}
	return page(list, p), nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

// fakeTx ejecuta fn sin transacción real; err simula un fallo del commit.
type fakeTx struct {
	orders       repository.OrderRepository
	procurements repository.ProcurementRepository
	calls        int
	err          error
}

func (f *fakeTx) Run(_ context.Context, fn func(repository.OrderRepository, repository.ProcurementRepository) error) error {
	f.calls++
	if err := fn(f.orders, f.procurements); err != nil {
		return err
	}
	return f.err
}
