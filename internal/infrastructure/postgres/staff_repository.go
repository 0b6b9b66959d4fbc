package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación del puerto StaffRepository sobre PostgreSQL.
type StaffRepo struct {
	q Querier
}

func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

const staffColumns = `staff_id, full_name, role, phone, is_active, created_at, updated_at`

func scanStaff(row rowScanner) (*entity.Staff, error) {
	var s entity.Staff
	if err := row.Scan(&s.ID, &s.FullName, &s.Role, &s.Phone, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepo) Create(ctx context.Context, s *entity.Staff) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO staff (full_name, role, phone, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING staff_id, created_at`,
		s.FullName, s.Role, s.Phone, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt)
	return mapError(err, opWrite, "insert staff")
}

func (r *StaffRepo) GetByID(ctx context.Context, id int64) (*entity.Staff, error) {
	s, err := scanStaff(r.q.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE staff_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, opRead, "get staff")
	}
	return s, nil
}

func (r *StaffRepo) List(ctx context.Context, page repository.Page) ([]*entity.Staff, error) {
	limit, offset := limitOffset(page)
	rows, err := r.q.Query(ctx,
		`SELECT `+staffColumns+` FROM staff ORDER BY staff_id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError(err, opRead, "list staff")
	}
	list, err := collect(rows, scanStaff)
	return list, mapError(err, opRead, "scan staff")
}

func (r *StaffRepo) Update(ctx context.Context, s *entity.Staff) error {
	err := r.q.QueryRow(ctx, `
		UPDATE staff SET full_name = $2, role = $3, phone = $4, is_active = $5, updated_at = now()
		WHERE staff_id = $1
		RETURNING updated_at`,
		s.ID, s.FullName, s.Role, s.Phone, s.IsActive,
	).Scan(&s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound("staff")
	}
	return mapError(err, opWrite, "update staff")
}

// Delete pedidos, compras, movimientos y entregas quedan con la FK en NULL.
func (r *StaffRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM staff WHERE staff_id = $1`, id)
	if err != nil {
		return false, mapError(err, opDelete, "delete staff")
	}
	return tag.RowsAffected() > 0, nil
}
