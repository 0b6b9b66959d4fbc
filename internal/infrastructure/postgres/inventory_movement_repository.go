package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/inventory"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación del libro de movimientos (solo inserción).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

const movementColumns = `movement_id, product_id, movement_type, quantity, order_id, procurement_id, movement_date, recorded_by, created_at`

func scanMovement(row rowScanner) (*entity.InventoryMovement, error) {
	var (
		m                      entity.InventoryMovement
		orderID, procurementID *int64
	)
	err := row.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &orderID, &procurementID,
		&m.MovementDate, &m.RecordedBy, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Reference = entity.ReferenceFromColumns(orderID, procurementID)
	return &m, nil
}

// Create registra un movimiento. La referencia se guarda en order_id o procurement_id.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO inventory_movements (product_id, movement_type, quantity, order_id, procurement_id, movement_date, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING movement_id, created_at`,
		m.ProductID, m.Type, m.Quantity, m.Reference.OrderID(), m.Reference.ProcurementID(),
		m.MovementDate, m.RecordedBy,
	).Scan(&m.ID, &m.CreatedAt)
	return mapError(err, opWrite, "insert movement")
}

// GetByID devuelve (nil, nil) si no existe.
func (r *InventoryMovementRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx,
		`SELECT `+movementColumns+` FROM inventory_movements WHERE movement_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, opRead, "get movement")
	}
	return m, nil
}

// List movimientos por movement_id aplicando los filtros no nulos.
func (r *InventoryMovementRepo) List(ctx context.Context, f repository.MovementFilter, page repository.Page) ([]*entity.InventoryMovement, error) {
	var (
		where []string
		args  []any
	)
	add := func(column string, v *int64) {
		if v == nil {
			return
		}
		args = append(args, *v)
		where = append(where, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("product_id", f.ProductID)
	add("order_id", f.OrderID)
	add("procurement_id", f.ProcurementID)

	var sb strings.Builder
	sb.WriteString(`SELECT ` + movementColumns + ` FROM inventory_movements`)
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	limit, offset := limitOffset(page)
	args = append(args, limit, offset)
	fmt.Fprintf(&sb, " ORDER BY movement_id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, mapError(err, opRead, "list movements")
	}
	list, err := collect(rows, scanMovement)
	return list, mapError(err, opRead, "scan movements")
}

// ListByProduct todos los movimientos del producto en orden cronológico (kardex).
func (r *InventoryMovementRepo) ListByProduct(ctx context.Context, productID int64) ([]entity.InventoryMovement, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+movementColumns+` FROM inventory_movements
		WHERE product_id = $1
		ORDER BY movement_date, movement_id`, productID)
	if err != nil {
		return nil, mapError(err, opRead, "list product movements")
	}
	list, err := collect(rows, scanMovement)
	if err != nil {
		return nil, mapError(err, opRead, "scan product movements")
	}
	out := make([]entity.InventoryMovement, len(list))
	for i, m := range list {
		out[i] = *m
	}
	return out, nil
}

// Delete corrige el libro eliminando un movimiento.
func (r *InventoryMovementRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM inventory_movements WHERE movement_id = $1`, id)
	if err != nil {
		return false, mapError(err, opDelete, "delete movement")
	}
	return tag.RowsAffected() > 0, nil
}

// TotalsByProduct agrega en la base: SUM(quantity) por tipo. Sin filas devuelve un mapa vacío.
func (r *InventoryMovementRepo) TotalsByProduct(ctx context.Context, productID int64) (inventory.Totals, error) {
	rows, err := r.q.Query(ctx, `
		SELECT movement_type, SUM(quantity)
		FROM inventory_movements
		WHERE product_id = $1
		GROUP BY movement_type`, productID)
	if err != nil {
		return nil, mapError(err, opRead, "sum movements")
	}
	defer rows.Close()
	totals := make(inventory.Totals)
	for rows.Next() {
		var (
			mt  entity.MovementType
			sum decimal.Decimal
		)
		if err := rows.Scan(&mt, &sum); err != nil {
			return nil, mapError(err, opRead, "scan movement sums")
		}
		totals[mt] = sum
	}
	return totals, mapError(rows.Err(), opRead, "sum movements")
}

// TotalsAll igual que TotalsByProduct para todos los productos con movimientos.
func (r *InventoryMovementRepo) TotalsAll(ctx context.Context) (map[int64]inventory.Totals, error) {
	rows, err := r.q.Query(ctx, `
		SELECT product_id, movement_type, SUM(quantity)
		FROM inventory_movements
		GROUP BY product_id, movement_type
		ORDER BY product_id`)
	if err != nil {
		return nil, mapError(err, opRead, "sum all movements")
	}
	defer rows.Close()
	out := make(map[int64]inventory.Totals)
	for rows.Next() {
		var (
			productID int64
			mt        entity.MovementType
			sum       decimal.Decimal
		)
		if err := rows.Scan(&productID, &mt, &sum); err != nil {
			return nil, mapError(err, opRead, "scan movement sums")
		}
		if out[productID] == nil {
			out[productID] = make(inventory.Totals)
		}
		out[productID][mt] = sum
	}
	return out, mapError(rows.Err(), opRead, "sum all movements")
}
