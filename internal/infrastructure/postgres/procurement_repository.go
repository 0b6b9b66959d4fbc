package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

var _ repository.ProcurementRepository = (*ProcurementRepo)(nil)

// ProcurementRepo persiste compras y sus líneas (procurement_items).
type ProcurementRepo struct {
	q Querier
}

func NewProcurementRepository(q Querier) *ProcurementRepo {
	return &ProcurementRepo{q: q}
}

const procurementColumns = `procurement_id, supplier_id, procurement_date, total_cost, recorded_by, created_at`

func scanProcurement(row rowScanner) (*entity.Procurement, error) {
	var p entity.Procurement
	err := row.Scan(&p.ID, &p.SupplierID, &p.ProcurementDate, &p.TotalCost, &p.RecordedBy, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProcurementItem(row rowScanner) (*entity.ProcurementItem, error) {
	var it entity.ProcurementItem
	if err := row.Scan(&it.ID, &it.ProcurementID, &it.ProductID, &it.Quantity, &it.UnitCost); err != nil {
		return nil, err
	}
	return &it, nil
}

// Create inserta la cabecera y las líneas; ejecutar dentro de TxRunner.
func (r *ProcurementRepo) Create(ctx context.Context, p *entity.Procurement) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO procurements (supplier_id, procurement_date, total_cost, recorded_by)
		VALUES ($1, $2, $3, $4)
		RETURNING procurement_id, created_at`,
		p.SupplierID, p.ProcurementDate, p.TotalCost, p.RecordedBy,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return mapError(err, opWrite, "insert procurement")
	}
	for i := range p.Items {
		it := &p.Items[i]
		it.ProcurementID = p.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO procurement_items (procurement_id, product_id, quantity, unit_cost)
			VALUES ($1, $2, $3, $4)
			RETURNING procurement_item_id`,
			it.ProcurementID, it.ProductID, it.Quantity, it.UnitCost,
		).Scan(&it.ID)
		if err != nil {
			return mapError(err, opWrite, "insert procurement item")
		}
	}
	return nil
}

func (r *ProcurementRepo) GetByID(ctx context.Context, id int64) (*entity.Procurement, error) {
	p, err := scanProcurement(r.q.QueryRow(ctx,
		`SELECT `+procurementColumns+` FROM procurements WHERE procurement_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, opRead, "get procurement")
	}
	if err := r.attachItems(ctx, []*entity.Procurement{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProcurementRepo) List(ctx context.Context, page repository.Page) ([]*entity.Procurement, error) {
	limit, offset := limitOffset(page)
	rows, err := r.q.Query(ctx,
		`SELECT `+procurementColumns+` FROM procurements ORDER BY procurement_id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, mapError(err, opRead, "list procurements")
	}
	list, err := collect(rows, scanProcurement)
	if err != nil {
		return nil, mapError(err, opRead, "scan procurements")
	}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProcurementRepo) attachItems(ctx context.Context, list []*entity.Procurement) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]int64, len(list))
	byID := make(map[int64]*entity.Procurement, len(list))
	for i, p := range list {
		ids[i] = p.ID
		byID[p.ID] = p
		p.Items = make([]entity.ProcurementItem, 0)
	}
	rows, err := r.q.Query(ctx, `
		SELECT procurement_item_id, procurement_id, product_id, quantity, unit_cost
		FROM procurement_items WHERE procurement_id = ANY($1) ORDER BY procurement_item_id`, ids)
	if err != nil {
		return mapError(err, opRead, "list procurement items")
	}
	items, err := collect(rows, scanProcurementItem)
	if err != nil {
		return mapError(err, opRead, "scan procurement items")
	}
	for _, it := range items {
		p := byID[it.ProcurementID]
		p.Items = append(p.Items, *it)
	}
	return nil
}

// Update modifica la cabecera de la compra.
func (r *ProcurementRepo) Update(ctx context.Context, p *entity.Procurement) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE procurements
		SET supplier_id = $2, procurement_date = $3, total_cost = $4, recorded_by = $5
		WHERE procurement_id = $1`,
		p.ID, p.SupplierID, p.ProcurementDate, p.TotalCost, p.RecordedBy)
	if err != nil {
		return mapError(err, opWrite, "update procurement")
	}
	if tag.RowsAffected() == 0 {
		return notFound("procurement")
	}
	return nil
}

func (r *ProcurementRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM procurements WHERE procurement_id = $1`, id)
	if err != nil {
		return false, mapError(err, opDelete, "delete procurement")
	}
	return tag.RowsAffected() > 0, nil
}
