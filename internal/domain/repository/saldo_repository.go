package repository

import (
	"context"
	"time"

	"github.com/jhoicas/boletas-api/internal/domain/entity"
)

// SaldoFilter filtros del listado de saldos (interfaz de reportes, solo lectura).
type SaldoFilter struct {
	Buscar        string                 // texto libre: boleta, cliente o descripción de artículo
	Desde         *time.Time             // rango sobre la fecha de la boleta
	Hasta         *time.Time
	OcultarCeroEn *entity.EstadoCustodia // omite filas con saldo cero en este estado
	Limit         int
	Offset        int
}

// SaldoRepository define el puerto de persistencia para los saldos por
// (boleta, artículo, tipo). Las mutaciones ocurren siempre dentro de una
// transacción del TxRunner; GetForUpdate bloquea la fila (SELECT FOR UPDATE).
type SaldoRepository interface {
	Get(ctx context.Context, numeroBoleta, codigoArticulo, tipoBoleta string) (*entity.BoletaSaldo, error)
	GetForUpdate(ctx context.Context, numeroBoleta, codigoArticulo, tipoBoleta string) (*entity.BoletaSaldo, error)
	// UpdateSaldos persiste los cuatro campos de estado de una fila ya bloqueada.
	// Cantidad no se toca: es inmutable después de la creación.
	UpdateSaldos(ctx context.Context, s *entity.BoletaSaldo) error
	List(ctx context.Context, f SaldoFilter) ([]*entity.BoletaSaldo, int, error)
}
