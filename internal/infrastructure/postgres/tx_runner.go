package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/boletas-api/internal/application/manifiesto"
	"github.com/jhoicas/boletas-api/internal/application/traslado"
	"github.com/jhoicas/boletas-api/internal/domain/repository"
)

// Ensure TxRunner implements traslado.TxRunner and manifiesto.TxRunner.
var _ traslado.TxRunner = (*TxRunner)(nil)
var _ manifiesto.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL: es la
// única vía de escritura del motor. Commit si fn devuelve nil, si no
// Rollback (también ante panic, vía defer).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Un timeout en ctx revierte limpio, sin efecto parcial.
func (r *TxRunner) Run(ctx context.Context, fn func(
	saldoRepo repository.SaldoRepository,
	manifRepo repository.ManifiestoRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saldoRepo := NewSaldoRepository(tx)
	manifRepo := NewManifiestoRepository(tx)
	movRepo := NewMovimientoRepository(tx)

	if err := fn(saldoRepo, manifRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
