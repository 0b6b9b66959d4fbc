package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación del puerto DeliveryRepository sobre PostgreSQL.
type DeliveryRepo struct {
	q Querier
}

func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

const deliveryColumns = `delivery_id, order_id, delivery_date, delivery_status, delivered_by, created_at`

func scanDelivery(row rowScanner) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := row.Scan(&d.ID, &d.OrderID, &d.DeliveryDate, &d.Status, &d.DeliveredBy, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepo) Create(ctx context.Context, d *entity.Delivery) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO deliveries (order_id, delivery_date, delivery_status, delivered_by)
		VALUES ($1, $2, $3, $4)
		RETURNING delivery_id, created_at`,
		d.OrderID, d.DeliveryDate, d.Status, d.DeliveredBy,
	).Scan(&d.ID, &d.CreatedAt)
	return mapError(err, opWrite, "insert delivery")
}

func (r *DeliveryRepo) GetByID(ctx context.Context, id int64) (*entity.Delivery, error) {
	d, err := scanDelivery(r.q.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE delivery_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, opRead, "get delivery")
	}
	return d, nil
}

func (r *DeliveryRepo) List(ctx context.Context, page repository.Page) ([]*entity.Delivery, error) {
	limit, offset := limitOffset(page)
	rows, err := r.q.Query(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries ORDER BY delivery_id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError(err, opRead, "list deliveries")
	}
	list, err := collect(rows, scanDelivery)
	return list, mapError(err, opRead, "scan deliveries")
}

func (r *DeliveryRepo) Update(ctx context.Context, d *entity.Delivery) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE deliveries SET order_id = $2, delivery_date = $3, delivery_status = $4, delivered_by = $5
		WHERE delivery_id = $1`,
		d.ID, d.OrderID, d.DeliveryDate, d.Status, d.DeliveredBy)
	if err != nil {
		return mapError(err, opWrite, "update delivery")
	}
	if tag.RowsAffected() == 0 {
		return notFound("delivery")
	}
	return nil
}

func (r *DeliveryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM deliveries WHERE delivery_id = $1`, id)
	if err != nil {
		return false, mapError(err, opDelete, "delete delivery")
	}
	return tag.RowsAffected() > 0, nil
}
