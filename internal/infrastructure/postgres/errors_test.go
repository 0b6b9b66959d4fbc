package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/terrafoods-ems/internal/domain"
)

func TestMapError_Taxonomia(t *testing.T) {
	cases := []struct {
		name string
		err  error
		op   operation
		want error
	}{
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "product_categories_category_name_key"}, opWrite, domain.ErrConflict},
		{"fk al borrar", &pgconn.PgError{Code: "23503", TableName: "order_items", ConstraintName: "order_items_product_id_fkey"}, opDelete, domain.ErrConflict},
		{"fk al insertar", &pgconn.PgError{Code: "23503", TableName: "inventory_movements", ConstraintName: "inventory_movements_product_id_fkey"}, opWrite, domain.ErrInvalidInput},
		{"check", &pgconn.PgError{Code: "23514", ConstraintName: "inventory_movements_quantity_check"}, opWrite, domain.ErrInvalidInput},
		{"conexión", &pgconn.PgError{Code: "08006"}, opRead, domain.ErrStoreUnavailable},
		{"shutdown", &pgconn.PgError{Code: "57P01"}, opRead, domain.ErrStoreUnavailable},
		{"timeout", context.DeadlineExceeded, opRead, domain.ErrStoreUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err, tc.op, "op")
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestMapError_FKIndicaColumna(t *testing.T) {
	err := mapError(&pgconn.PgError{
		Code:           "23503",
		TableName:      "inventory_movements",
		ConstraintName: "inventory_movements_product_id_fkey",
	}, opWrite, "create movement")

	var vErr *domain.ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, "product_id", vErr.Field)
}

func TestMapError_NilYGenericos(t *testing.T) {
	assert.NoError(t, mapError(nil, opRead, "x"))

	err := mapError(errors.New("boom"), opRead, "list products")
	assert.EqualError(t, err, "list products: boom")
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
}
