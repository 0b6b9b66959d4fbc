package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `product_id, product_name, category_id, unit_of_measure, perishability_days, is_active, created_at, updated_at`

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.CategoryID, &p.UnitOfMeasure, &p.PerishabilityDays,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto; ID y CreatedAt los asigna la base.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO products (product_name, category_id, unit_of_measure, perishability_days, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING product_id, created_at`,
		p.Name, p.CategoryID, p.UnitOfMeasure, p.PerishabilityDays, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt)
	return mapError(err, opWrite, "insert product")
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE product_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, opRead, "get product")
	}
	return p, nil
}

// List productos por product_id.
func (r *ProductRepo) List(ctx context.Context, page repository.Page) ([]*entity.Product, error) {
	limit, offset := limitOffset(page)
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY product_id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError(err, opRead, "list products")
	}
	list, err := collect(rows, scanProduct)
	return list, mapError(err, opRead, "scan products")
}

// Update reescribe todos los campos editables y marca updated_at.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	err := r.q.QueryRow(ctx, `
		UPDATE products
		SET product_name = $2, category_id = $3, unit_of_measure = $4, perishability_days = $5,
		    is_active = $6, updated_at = now()
		WHERE product_id = $1
		RETURNING updated_at`,
		p.ID, p.Name, p.CategoryID, p.UnitOfMeasure, p.PerishabilityDays, p.IsActive,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound("product")
	}
	return mapError(err, opWrite, "update product")
}

// Delete falla con conflicto si hay movimientos o líneas que lo referencian.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		return false, mapError(err, opDelete, "delete product")
	}
	return tag.RowsAffected() > 0, nil
}
