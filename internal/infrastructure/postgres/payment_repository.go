package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `payment_id, order_id, payment_method, amount_paid, payment_date, created_at`

func scanPayment(row rowScanner) (*entity.Payment, error) {
	var p entity.Payment
	if err := row.Scan(&p.ID, &p.OrderID, &p.Method, &p.AmountPaid, &p.PaymentDate, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO payments (order_id, payment_method, amount_paid, payment_date)
		VALUES ($1, $2, $3, $4)
		RETURNING payment_id, created_at`,
		p.OrderID, p.Method, p.AmountPaid, p.PaymentDate,
	).Scan(&p.ID, &p.CreatedAt)
	return mapError(err, opWrite, "insert payment")
}

func (r *PaymentRepo) GetByID(ctx context.Context, id int64) (*entity.Payment, error) {
	p, err := scanPayment(r.q.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, opRead, "get payment")
	}
	return p, nil
}

func (r *PaymentRepo) List(ctx context.Context, page repository.Page) ([]*entity.Payment, error) {
	limit, offset := limitOffset(page)
	rows, err := r.q.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments ORDER BY payment_id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError(err, opRead, "list payments")
	}
	list, err := collect(rows, scanPayment)
	return list, mapError(err, opRead, "scan payments")
}

func (r *PaymentRepo) Update(ctx context.Context, p *entity.Payment) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE payments SET order_id = $2, payment_method = $3, amount_paid = $4, payment_date = $5
		WHERE payment_id = $1`,
		p.ID, p.OrderID, p.Method, p.AmountPaid, p.PaymentDate)
	if err != nil {
		return mapError(err, opWrite, "update payment")
	}
	if tag.RowsAffected() == 0 {
		return notFound("payment")
	}
	return nil
}

func (r *PaymentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1`, id)
	if err != nil {
		return false, mapError(err, opDelete, "delete payment")
	}
	return tag.RowsAffected() > 0, nil
}
