package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/terrafoods-ems/internal/domain"
)

// operación que originó el error; decide cómo se interpreta una violación de FK (23503).
type operation int

const (
	opRead operation = iota
	opWrite
	opDelete
)

// mapError traduce errores de PostgreSQL/pgx a la taxonomía de dominio:
//
//	23505 unique_violation                 -> ErrConflict
//	23503 foreign_key_violation (delete)   -> ErrConflict (política RESTRICT)
//	23503 foreign_key_violation (write)    -> ValidationError (referencia inexistente)
//	23514, 22P02, 22003                    -> ValidationError
//	conexión / timeout / clase 08, 57P, 53 -> ErrStoreUnavailable
func mapError(err error, op operation, what string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w: %s", what, domain.ErrConflict, pgErr.ConstraintName)
		case "23503":
			if op == opDelete {
				return fmt.Errorf("%s: %w: existen registros dependientes (%s)", what, domain.ErrConflict, pgErr.ConstraintName)
			}
			return domain.NewValidationError(fkColumn(pgErr), "hace referencia a un registro inexistente")
		case "23514", "22P02", "22003":
			field := pgErr.ColumnName
			if field == "" {
				field = pgErr.ConstraintName
			}
			return domain.NewValidationError(field, pgErr.Message)
		}
		if isUnavailableCode(pgErr.Code) {
			return fmt.Errorf("%s: %w: %w", what, domain.ErrStoreUnavailable, err)
		}
		return fmt.Errorf("%s: %w", what, err)
	}
	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", what, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// fkColumn extrae la columna de un constraint "<tabla>_<columna>_fkey".
func fkColumn(pgErr *pgconn.PgError) string {
	name := strings.TrimSuffix(pgErr.ConstraintName, "_fkey")
	return strings.TrimPrefix(name, pgErr.TableName+"_")
}

func isUnavailableCode(code string) bool {
	return strings.HasPrefix(code, "08") || strings.HasPrefix(code, "57P") || strings.HasPrefix(code, "53")
}

func isUnavailable(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded)
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
}
