package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `category_id, category_name, created_at`

func scanCategory(row rowScanner) (*entity.ProductCategory, error) {
	var c entity.ProductCategory
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserta la categoría y rellena ID y CreatedAt.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.ProductCategory) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO product_categories (category_name) VALUES ($1) RETURNING category_id, created_at`,
		c.Name,
	).Scan(&c.ID, &c.CreatedAt)
	return mapError(err, opWrite, "insert category")
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.ProductCategory, error) {
	c, err := scanCategory(r.q.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM product_categories WHERE category_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, opRead, "get category")
	}
	return c, nil
}

// GetByName búsqueda exacta por nombre; (nil, nil) si no existe.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.ProductCategory, error) {
	c, err := scanCategory(r.q.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM product_categories WHERE category_name = $1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, opRead, "get category by name")
	}
	return c, nil
}

func (r *CategoryRepo) List(ctx context.Context, page repository.Page) ([]*entity.ProductCategory, error) {
	limit, offset := limitOffset(page)
	rows, err := r.q.Query(ctx,
		`SELECT `+categoryColumns+` FROM product_categories ORDER BY category_id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, mapError(err, opRead, "list categories")
	}
	list, err := collect(rows, scanCategory)
	return list, mapError(err, opRead, "scan categories")
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.ProductCategory) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE product_categories SET category_name = $2 WHERE category_id = $1`, c.ID, c.Name)
	if err != nil {
		return mapError(err, opWrite, "update category")
	}
	if tag.RowsAffected() == 0 {
		return notFound("category")
	}
	return nil
}

// Delete los productos de la categoría quedan con category_id NULL.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM product_categories WHERE category_id = $1`, id)
	if err != nil {
		return false, mapError(err, opDelete, "delete category")
	}
	return tag.RowsAffected() > 0, nil
}
