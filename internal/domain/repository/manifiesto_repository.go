package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/boletas-api/internal/domain/entity"
)

// ManifiestoRepository define el puerto de persistencia para cabeceras y
// líneas de manifiesto. Las mutaciones ocurren dentro de una transacción del
// TxRunner; el orden de bloqueo es siempre saldo primero, línea después.
type ManifiestoRepository interface {
	Exists(ctx context.Context, numero string) (bool, error)
	GetHeader(ctx context.Context, numero string) (*entity.Manifiesto, error)
	CreateHeader(ctx context.Context, m *entity.Manifiesto) error
	// AddPesoLocal suma delta (puede ser negativo en reversas) al peso
	// denormalizado de la cabecera.
	AddPesoLocal(ctx context.Context, numero string, delta decimal.Decimal) error

	// AddLinea suma cantidad a la línea (numero, boleta, artículo, tipo),
	// creándola si no existe.
	AddLinea(ctx context.Context, l *entity.ManifiestoLinea) error
	GetLineaForUpdate(ctx context.Context, numero, numeroBoleta, codigoArticulo, tipoBoleta string) (*entity.ManifiestoLinea, error)
	UpdateLineaCantidad(ctx context.Context, numero, numeroBoleta, codigoArticulo, tipoBoleta string, cantidad decimal.Decimal) error
	DeleteLinea(ctx context.Context, numero, numeroBoleta, codigoArticulo, tipoBoleta string) error
	ListLineas(ctx context.Context, numero string) ([]*entity.ManifiestoLinea, error)

	// Renumerar reescribe el número en cabecera y líneas; devuelve cuántas
	// filas de cada tabla cambiaron.
	Renumerar(ctx context.Context, viejo, nuevo string) (cabeceras, lineas int64, err error)
}
