package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/boletas-api/internal/domain/entity"
	"github.com/jhoicas/boletas-api/internal/domain/repository"
)

var _ repository.SaldoRepository = (*SaldoRepo)(nil)

const saldoColumns = `numero_boleta, codigo_articulo, tipo_boleta, cliente, descripcion_articulo,
		fecha, cantidad, bodega, proceso, terminado, despachado, updated_at`

// SaldoRepo implementación de SaldoRepository sobre PostgreSQL (usable con pool o tx).
type SaldoRepo struct {
	q Querier
}

// NewSaldoRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewSaldoRepository(q Querier) *SaldoRepo {
	return &SaldoRepo{q: q}
}

func scanSaldo(row pgx.Row) (*entity.BoletaSaldo, error) {
	var s entity.BoletaSaldo
	err := row.Scan(
		&s.NumeroBoleta, &s.CodigoArticulo, &s.TipoBoleta, &s.Cliente, &s.DescripcionArticulo,
		&s.Fecha, &s.Cantidad, &s.Bodega, &s.Proceso, &s.Terminado, &s.Despachado, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan saldo: %w", err)
	}
	return &s, nil
}

// Get obtiene la fila de saldos de una boleta+artículo+tipo. Nil si no existe.
func (r *SaldoRepo) Get(ctx context.Context, numeroBoleta, codigoArticulo, tipoBoleta string) (*entity.BoletaSaldo, error) {
	query := `
		SELECT ` + saldoColumns + `
		FROM boleta_saldos
		WHERE numero_boleta = $1 AND codigo_articulo = $2 AND tipo_boleta = $3`
	return scanSaldo(r.q.QueryRow(ctx, query, numeroBoleta, codigoArticulo, tipoBoleta))
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
// Nil si no existe; el caso de uso decide el error de negocio.
func (r *SaldoRepo) GetForUpdate(ctx context.Context, numeroBoleta, codigoArticulo, tipoBoleta string) (*entity.BoletaSaldo, error) {
	query := `
		SELECT ` + saldoColumns + `
		FROM boleta_saldos
		WHERE numero_boleta = $1 AND codigo_articulo = $2 AND tipo_boleta = $3
		FOR UPDATE`
	return scanSaldo(r.q.QueryRow(ctx, query, numeroBoleta, codigoArticulo, tipoBoleta))
}

// UpdateSaldos persiste los cuatro campos de estado. cantidad no se toca.
func (r *SaldoRepo) UpdateSaldos(ctx context.Context, s *entity.BoletaSaldo) error {
	query := `
		UPDATE boleta_saldos
		SET bodega = $4, proceso = $5, terminado = $6, despachado = $7, updated_at = now()
		WHERE numero_boleta = $1 AND codigo_articulo = $2 AND tipo_boleta = $3`
	tag, err := r.q.Exec(ctx, query,
		s.NumeroBoleta, s.CodigoArticulo, s.TipoBoleta,
		s.Bodega, s.Proceso, s.Terminado, s.Despachado,
	)
	if err != nil {
		return fmt.Errorf("update saldos: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update saldos: fila no encontrada")
	}
	return nil
}

// List lista filas de saldos con búsqueda libre, rango de fechas y filtro de
// ceros por estado, paginado. Devuelve también el total sin paginar.
func (r *SaldoRepo) List(ctx context.Context, f repository.SaldoFilter) ([]*entity.BoletaSaldo, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if f.Buscar != "" {
		where += fmt.Sprintf(" AND (numero_boleta ILIKE $%d OR cliente ILIKE $%d OR descripcion_articulo ILIKE $%d)", pos, pos, pos)
		args = append(args, "%"+f.Buscar+"%")
		pos++
	}
	if f.Desde != nil {
		where += fmt.Sprintf(" AND fecha >= $%d", pos)
		args = append(args, *f.Desde)
		pos++
	}
	if f.Hasta != nil {
		where += fmt.Sprintf(" AND fecha <= $%d", pos)
		args = append(args, *f.Hasta)
		pos++
	}
	if f.OcultarCeroEn != nil {
		switch *f.OcultarCeroEn {
		case entity.EstadoBodega:
			where += " AND bodega <> 0"
		case entity.EstadoProceso:
			where += " AND proceso <> 0"
		case entity.EstadoTerminado:
			where += " AND terminado <> 0"
		case entity.EstadoDespachado:
			where += " AND despachado <> 0"
		}
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM boleta_saldos"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count saldos: %w", err)
	}

	query := "SELECT " + saldoColumns + " FROM boleta_saldos" + where +
		fmt.Sprintf(" ORDER BY fecha DESC, numero_boleta LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list saldos: %w", err)
	}
	defer rows.Close()
	var list []*entity.BoletaSaldo
	for rows.Next() {
		var s entity.BoletaSaldo
		if err := rows.Scan(
			&s.NumeroBoleta, &s.CodigoArticulo, &s.TipoBoleta, &s.Cliente, &s.DescripcionArticulo,
			&s.Fecha, &s.Cantidad, &s.Bodega, &s.Proceso, &s.Terminado, &s.Despachado, &s.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan saldo: %w", err)
		}
		list = append(list, &s)
	}
	return list, total, rows.Err()
}
