package traslado

import (
	"context"

	"github.com/jhoicas/boletas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Commit si fn devuelve nil, Rollback si no.
// Es la única vía por la que el motor toca almacenamiento: los saldos se
// leen siempre frescos dentro de la transacción que los bloquea.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saldoRepo repository.SaldoRepository,
		manifRepo repository.ManifiestoRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}
