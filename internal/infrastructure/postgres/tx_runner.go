package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/terrafoods-ems/internal/application/usecase"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de documentos atados a la tx y hace Commit o Rollback.
// Cabecera e ítems de un pedido o compra se persisten juntos o no se persisten.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	procurementRepo repository.ProcurementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError(err, opWrite, "begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx), NewProcurementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", mapError(err, opWrite, "commit"))
	}
	return nil
}
