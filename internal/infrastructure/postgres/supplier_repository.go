package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `supplier_id, supplier_name, supplier_type, phone, location, is_active, created_at, updated_at`

func scanSupplier(row rowScanner) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.Type, &s.Phone, &s.Location, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO suppliers (supplier_name, supplier_type, phone, location, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING supplier_id, created_at`,
		s.Name, s.Type, s.Phone, s.Location, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt)
	return mapError(err, opWrite, "insert supplier")
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE supplier_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, opRead, "get supplier")
	}
	return s, nil
}

func (r *SupplierRepo) List(ctx context.Context, page repository.Page) ([]*entity.Supplier, error) {
	limit, offset := limitOffset(page)
	rows, err := r.q.Query(ctx,
		`SELECT `+supplierColumns+` FROM suppliers ORDER BY supplier_id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError(err, opRead, "list suppliers")
	}
	list, err := collect(rows, scanSupplier)
	return list, mapError(err, opRead, "scan suppliers")
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	err := r.q.QueryRow(ctx, `
		UPDATE suppliers
		SET supplier_name = $2, supplier_type = $3, phone = $4, location = $5, is_active = $6, updated_at = now()
		WHERE supplier_id = $1
		RETURNING updated_at`,
		s.ID, s.Name, s.Type, s.Phone, s.Location, s.IsActive,
	).Scan(&s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound("supplier")
	}
	return mapError(err, opWrite, "update supplier")
}

func (r *SupplierRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1`, id)
	if err != nil {
		return false, mapError(err, opDelete, "delete supplier")
	}
	return tag.RowsAffected() > 0, nil
}
