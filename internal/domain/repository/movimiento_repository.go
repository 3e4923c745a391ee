package repository

import (
	"context"
	"time"

	"github.com/jhoicas/boletas-api/internal/domain/entity"
)

// MovimientoRepository define el puerto del log de auditoría.
// Solo inserta y lista: los movimientos jamás se actualizan ni se borran.
type MovimientoRepository interface {
	Create(ctx context.Context, m *entity.Movimiento) error
	ListByBoleta(ctx context.Context, numeroBoleta string, from, to *time.Time, limit, offset int) ([]*entity.Movimiento, error)
}
