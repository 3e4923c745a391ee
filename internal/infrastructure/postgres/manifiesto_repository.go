package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/boletas-api/internal/domain"
	"github.com/jhoicas/boletas-api/internal/domain/entity"
	"github.com/jhoicas/boletas-api/internal/domain/repository"
)

var _ repository.ManifiestoRepository = (*ManifiestoRepo)(nil)

// ManifiestoRepo implementación de ManifiestoRepository sobre PostgreSQL
// (usable con pool o tx).
type ManifiestoRepo struct {
	q Querier
}

// NewManifiestoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewManifiestoRepository(q Querier) *ManifiestoRepo {
	return &ManifiestoRepo{q: q}
}

// Exists verifica si la cabecera existe.
func (r *ManifiestoRepo) Exists(ctx context.Context, numero string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM manifiestos WHERE numero = $1)`, numero).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists manifiesto: %w", err)
	}
	return existe, nil
}

// GetHeader obtiene la cabecera. Nil si no existe.
func (r *ManifiestoRepo) GetHeader(ctx context.Context, numero string) (*entity.Manifiesto, error) {
	query := `
		SELECT numero, fecha, peso_local, estado, created_at
		FROM manifiestos WHERE numero = $1`
	var m entity.Manifiesto
	err := r.q.QueryRow(ctx, query, numero).Scan(&m.Numero, &m.Fecha, &m.PesoLocal, &m.Estado, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manifiesto: %w", err)
	}
	return &m, nil
}

// CreateHeader inserta la cabecera nueva.
func (r *ManifiestoRepo) CreateHeader(ctx context.Context, m *entity.Manifiesto) error {
	query := `
		INSERT INTO manifiestos (numero, fecha, peso_local, estado, created_at)
		VALUES ($1, $2, $3, $4, now())`
	_, err := r.q.Exec(ctx, query, m.Numero, m.Fecha, m.PesoLocal, m.Estado)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrManifiestoDuplicado
		}
		return fmt.Errorf("create manifiesto: %w", err)
	}
	return nil
}

// AddPesoLocal suma delta al peso denormalizado de la cabecera.
func (r *ManifiestoRepo) AddPesoLocal(ctx context.Context, numero string, delta decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE manifiestos SET peso_local = peso_local + $2 WHERE numero = $1`, numero, delta)
	if err != nil {
		return fmt.Errorf("add peso_local: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("add peso_local: manifiesto no encontrado")
	}
	return nil
}

// AddLinea suma cantidad a la línea, creándola si no existe.
func (r *ManifiestoRepo) AddLinea(ctx context.Context, l *entity.ManifiestoLinea) error {
	query := `
		INSERT INTO manifiesto_lineas (numero_manifiesto, numero_boleta, codigo_articulo, tipo_boleta, cantidad)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (numero_manifiesto, numero_boleta, codigo_articulo, tipo_boleta)
		DO UPDATE SET cantidad = manifiesto_lineas.cantidad + EXCLUDED.cantidad`
	_, err := r.q.Exec(ctx, query, l.NumeroManifiesto, l.NumeroBoleta, l.CodigoArticulo, l.TipoBoleta, l.Cantidad)
	if err != nil {
		return fmt.Errorf("add linea: %w", err)
	}
	return nil
}

// GetLineaForUpdate obtiene la línea y la bloquea (SELECT FOR UPDATE). Nil si no existe.
func (r *ManifiestoRepo) GetLineaForUpdate(ctx context.Context, numero, numeroBoleta, codigoArticulo, tipoBoleta string) (*entity.ManifiestoLinea, error) {
	query := `
		SELECT numero_manifiesto, numero_boleta, codigo_articulo, tipo_boleta, cantidad
		FROM manifiesto_lineas
		WHERE numero_manifiesto = $1 AND numero_boleta = $2 AND codigo_articulo = $3 AND tipo_boleta = $4
		FOR UPDATE`
	var l entity.ManifiestoLinea
	err := r.q.QueryRow(ctx, query, numero, numeroBoleta, codigoArticulo, tipoBoleta).Scan(
		&l.NumeroManifiesto, &l.NumeroBoleta, &l.CodigoArticulo, &l.TipoBoleta, &l.Cantidad,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get linea for update: %w", err)
	}
	return &l, nil
}

// UpdateLineaCantidad fija la cantidad de una línea ya bloqueada.
func (r *ManifiestoRepo) UpdateLineaCantidad(ctx context.Context, numero, numeroBoleta, codigoArticulo, tipoBoleta string, cantidad decimal.Decimal) error {
	query := `
		UPDATE manifiesto_lineas SET cantidad = $5
		WHERE numero_manifiesto = $1 AND numero_boleta = $2 AND codigo_articulo = $3 AND tipo_boleta = $4`
	tag, err := r.q.Exec(ctx, query, numero, numeroBoleta, codigoArticulo, tipoBoleta, cantidad)
	if err != nil {
		return fmt.Errorf("update linea: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update linea: línea no encontrada")
	}
	return nil
}

// DeleteLinea elimina una línea totalmente reversada.
func (r *ManifiestoRepo) DeleteLinea(ctx context.Context, numero, numeroBoleta, codigoArticulo, tipoBoleta string) error {
	query := `
		DELETE FROM manifiesto_lineas
		WHERE numero_manifiesto = $1 AND numero_boleta = $2 AND codigo_articulo = $3 AND tipo_boleta = $4`
	tag, err := r.q.Exec(ctx, query, numero, numeroBoleta, codigoArticulo, tipoBoleta)
	if err != nil {
		return fmt.Errorf("delete linea: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete linea: línea no encontrada")
	}
	return nil
}

// ListLineas lista las líneas del manifiesto.
func (r *ManifiestoRepo) ListLineas(ctx context.Context, numero string) ([]*entity.ManifiestoLinea, error) {
	query := `
		SELECT numero_manifiesto, numero_boleta, codigo_articulo, tipo_boleta, cantidad
		FROM manifiesto_lineas WHERE numero_manifiesto = $1
		ORDER BY numero_boleta, codigo_articulo`
	rows, err := r.q.Query(ctx, query, numero)
	if err != nil {
		return nil, fmt.Errorf("list lineas: %w", err)
	}
	defer rows.Close()
	var list []*entity.ManifiestoLinea
	for rows.Next() {
		var l entity.ManifiestoLinea
		if err := rows.Scan(&l.NumeroManifiesto, &l.NumeroBoleta, &l.CodigoArticulo, &l.TipoBoleta, &l.Cantidad); err != nil {
			return nil, fmt.Errorf("scan linea: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Renumerar reescribe el número en cabecera y líneas. El unique de la
// cabecera respalda el chequeo previo de duplicado del caso de uso.
func (r *ManifiestoRepo) Renumerar(ctx context.Context, viejo, nuevo string) (int64, int64, error) {
	tagCab, err := r.q.Exec(ctx, `UPDATE manifiestos SET numero = $2 WHERE numero = $1`, viejo, nuevo)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, 0, domain.ErrManifiestoDuplicado
		}
		return 0, 0, fmt.Errorf("renumerar cabecera: %w", err)
	}
	tagLin, err := r.q.Exec(ctx, `UPDATE manifiesto_lineas SET numero_manifiesto = $2 WHERE numero_manifiesto = $1`, viejo, nuevo)
	if err != nil {
		return 0, 0, fmt.Errorf("renumerar lineas: %w", err)
	}
	return tagCab.RowsAffected(), tagLin.RowsAffected(), nil
}
