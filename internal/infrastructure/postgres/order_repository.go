package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo persiste pedidos y sus líneas (order_items).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Create debe recibir una tx (ver TxRunner).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `order_id, customer_id, order_date, order_status, total_amount, created_by, created_at, updated_at`

func scanOrder(row rowScanner) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.Status, &o.TotalAmount, &o.CreatedBy,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOrderItem(row rowScanner) (*entity.OrderItem, error) {
	var it entity.OrderItem
	if err := row.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
		return nil, err
	}
	return &it, nil
}

// Create inserta la cabecera y cada línea; rellena los IDs generados.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO orders (customer_id, order_date, order_status, total_amount, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_id, created_at`,
		o.CustomerID, o.OrderDate, o.Status, o.TotalAmount, o.CreatedBy,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return mapError(err, opWrite, "insert order")
	}
	for i := range o.Items {
		it := &o.Items[i]
		it.OrderID = o.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING order_item_id`,
			it.OrderID, it.ProductID, it.Quantity, it.UnitPrice,
		).Scan(&it.ID)
		if err != nil {
			return mapError(err, opWrite, "insert order item")
		}
	}
	return nil
}

// GetByID devuelve el pedido con sus líneas; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, opRead, "get order")
	}
	if err := r.attachItems(ctx, []*entity.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// List pedidos por order_id, cada uno con sus líneas.
func (r *OrderRepo) List(ctx context.Context, page repository.Page) ([]*entity.Order, error) {
	limit, offset := limitOffset(page)
	rows, err := r.q.Query(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY order_id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError(err, opRead, "list orders")
	}
	list, err := collect(rows, scanOrder)
	if err != nil {
		return nil, mapError(err, opRead, "scan orders")
	}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// attachItems carga en una sola consulta las líneas de los pedidos dados.
func (r *OrderRepo) attachItems(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, len(orders))
	byID := make(map[int64]*entity.Order, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		byID[o.ID] = o
		o.Items = make([]entity.OrderItem, 0)
	}
	rows, err := r.q.Query(ctx, `
		SELECT order_item_id, order_id, product_id, quantity, unit_price
		FROM order_items WHERE order_id = ANY($1) ORDER BY order_item_id`, ids)
	if err != nil {
		return mapError(err, opRead, "list order items")
	}
	items, err := collect(rows, scanOrderItem)
	if err != nil {
		return mapError(err, opRead, "scan order items")
	}
	for _, it := range items {
		o := byID[it.OrderID]
		o.Items = append(o.Items, *it)
	}
	return nil
}

// Update modifica la cabecera; las líneas no se editan por esta vía.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	err := r.q.QueryRow(ctx, `
		UPDATE orders
		SET customer_id = $2, order_date = $3, order_status = $4, total_amount = $5, created_by = $6,
		    updated_at = now()
		WHERE order_id = $1
		RETURNING updated_at`,
		o.ID, o.CustomerID, o.OrderDate, o.Status, o.TotalAmount, o.CreatedBy,
	).Scan(&o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound("order")
	}
	return mapError(err, opWrite, "update order")
}

// Delete borra el pedido y en cascada sus líneas. Falla con conflicto si tiene
// movimientos, entregas o pagos asociados.
func (r *OrderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, id)
	if err != nil {
		return false, mapError(err, opDelete, "delete order")
	}
	return tag.RowsAffected() > 0, nil
}
