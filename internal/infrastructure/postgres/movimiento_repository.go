package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/boletas-api/internal/domain/entity"
	"github.com/jhoicas/boletas-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del log de auditoría sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: la tabla es append-only.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento. La etiqueta legible se deriva aquí del
// hecho tipado, en el borde de persistencia.
func (r *MovimientoRepo) Create(ctx context.Context, m *entity.Movimiento) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos (id, numero_boleta, codigo_articulo, tipo_boleta, descripcion,
			tipo, origen, destino, numero_manifiesto, etiqueta, cantidad, usuario, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.NumeroBoleta, m.CodigoArticulo, m.TipoBoleta, m.Descripcion,
		m.Tipo, string(m.Origen), string(m.Destino), m.NumeroManifiesto, m.Etiqueta(),
		m.Cantidad, m.Usuario, m.Fecha, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// ListByBoleta lista movimientos de una boleta en un rango de fechas.
func (r *MovimientoRepo) ListByBoleta(ctx context.Context, numeroBoleta string, from, to *time.Time, limit, offset int) ([]*entity.Movimiento, error) {
	query := `
		SELECT id, numero_boleta, codigo_articulo, tipo_boleta, descripcion,
			tipo, origen, destino, numero_manifiesto, cantidad, usuario, fecha, created_at
		FROM movimientos WHERE numero_boleta = $1`
	args := []any{numeroBoleta}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND fecha >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND fecha <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		var origen, destino string
		if err := rows.Scan(&m.ID, &m.NumeroBoleta, &m.CodigoArticulo, &m.TipoBoleta, &m.Descripcion,
			&m.Tipo, &origen, &destino, &m.NumeroManifiesto, &m.Cantidad, &m.Usuario, &m.Fecha, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		m.Origen = entity.EstadoCustodia(origen)
		m.Destino = entity.EstadoCustodia(destino)
		list = append(list, &m)
	}
	return list, rows.Err()
}
