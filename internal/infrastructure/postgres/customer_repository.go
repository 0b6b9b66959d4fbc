package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `customer_id, business_name, customer_type, contact_person, phone, location, is_active, created_at, updated_at`

func scanCustomer(row rowScanner) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.BusinessName, &c.CustomerType, &c.ContactPerson, &c.Phone, &c.Location,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO customers (business_name, customer_type, contact_person, phone, location, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING customer_id, created_at`,
		c.BusinessName, c.CustomerType, c.ContactPerson, c.Phone, c.Location, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt)
	return mapError(err, opWrite, "insert customer")
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE customer_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, opRead, "get customer")
	}
	return c, nil
}

// List clientes ordenados por customer_id.
func (r *CustomerRepo) List(ctx context.Context, page repository.Page) ([]*entity.Customer, error) {
	limit, offset := limitOffset(page)
	rows, err := r.q.Query(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY customer_id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError(err, opRead, "list customers")
	}
	list, err := collect(rows, scanCustomer)
	return list, mapError(err, opRead, "scan customers")
}

// Update actualiza un cliente existente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	err := r.q.QueryRow(ctx, `
		UPDATE customers
		SET business_name = $2, customer_type = $3, contact_person = $4, phone = $5, location = $6,
		    is_active = $7, updated_at = now()
		WHERE customer_id = $1
		RETURNING updated_at`,
		c.ID, c.BusinessName, c.CustomerType, c.ContactPerson, c.Phone, c.Location, c.IsActive,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound("customer")
	}
	return mapError(err, opWrite, "update customer")
}

// Delete falla con conflicto si el cliente tiene pedidos.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		return false, mapError(err, opDelete, "delete customer")
	}
	return tag.RowsAffected() > 0, nil
}
