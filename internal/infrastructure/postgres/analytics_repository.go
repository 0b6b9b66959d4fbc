package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/inventory"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre el libro de movimientos.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// TotalsBetween agrupa por tipo los movimientos con movement_date en [from, to).
// Un período sin movimientos devuelve Totals vacío (todo cero).
func (r *AnalyticsRepo) TotalsBetween(ctx context.Context, from, to time.Time) (inventory.Totals, error) {
	const query = `
	SELECT movement_type, SUM(quantity)
	FROM inventory_movements
	WHERE movement_date >= $1
	  AND movement_date <  $2
	GROUP BY movement_type`

	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, mapError(err, opRead, "analytics.TotalsBetween")
	}
	defer rows.Close()
	totals := make(inventory.Totals)
	for rows.Next() {
		var (
			mt  entity.MovementType
			sum decimal.Decimal
		)
		if err := rows.Scan(&mt, &sum); err != nil {
			return nil, mapError(err, opRead, "analytics.TotalsBetween scan")
		}
		totals[mt] = sum
	}
	return totals, mapError(rows.Err(), opRead, "analytics.TotalsBetween")
}

// TopProducts ranking de productos por cantidad de un tipo de movimiento (p. ej. SPOILAGE).
// A igualdad de cantidad desempata por product_id para que el orden sea estable.
func (r *AnalyticsRepo) TopProducts(
	ctx context.Context,
	mt entity.MovementType,
	from, to time.Time,
	limit int,
) ([]repository.ProductQuantity, error) {
	const query = `
	SELECT
	    p.product_id,
	    p.product_name,
	    SUM(m.quantity)             AS total_quantity
	FROM inventory_movements m
	JOIN products p ON p.product_id = m.product_id
	WHERE m.movement_type  = $1
	  AND m.movement_date >= $2
	  AND m.movement_date <  $3
	GROUP BY p.product_id, p.product_name
	ORDER BY total_quantity DESC, p.product_id
	LIMIT $4`

	rows, err := r.q.Query(ctx, query, string(mt), from, to, limit)
	if err != nil {
		return nil, mapError(err, opRead, "analytics.TopProducts")
	}
	defer rows.Close()
	results := make([]repository.ProductQuantity, 0, limit)
	for rows.Next() {
		var row repository.ProductQuantity
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Quantity); err != nil {
			return nil, mapError(err, opRead, "analytics.TopProducts scan")
		}
		results = append(results, row)
	}
	return results, mapError(rows.Err(), opRead, "analytics.TopProducts")
}
