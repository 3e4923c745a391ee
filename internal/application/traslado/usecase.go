package traslado

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/boletas-api/internal/domain"
	"github.com/jhoicas/boletas-api/internal/domain/entity"
	"github.com/jhoicas/boletas-api/internal/domain/repository"
	"github.com/jhoicas/boletas-api/pkg/logger"
)

// UseCase mueve cantidades de una boleta entre estados de custodia y reversa
// líneas de manifiesto, de forma transaccional: bloqueo de fila
// (SELECT FOR UPDATE), mutación de los dos campos, línea de manifiesto si
// aplica y registro de auditoría, todo con Commit o Rollback completo.
type UseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewUseCase construye el motor de traslados y reversas.
func NewUseCase(txRunner TxRunner, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, log: log}
}

// TrasladoInput entrada para Trasladar, ya tipada y lista para validar.
type TrasladoInput struct {
	NumeroBoleta   string
	CodigoArticulo string
	TipoBoleta     string
	Origen         entity.EstadoCustodia
	Destino        entity.EstadoCustodia
	Cantidad       decimal.Decimal
	Fecha          time.Time
	// NumeroManifiesto obligatorio cuando Destino es despachado.
	NumeroManifiesto string
	// CrearManifiesto confirma crear la cabecera si el número no existe.
	// El caller decide crear-vs-anexar consultando Resolver antes.
	CrearManifiesto bool
	Usuario         string
}

// TrasladoResult resultado de un traslado aceptado.
type TrasladoResult struct {
	Saldo        *entity.BoletaSaldo
	MovimientoID string
}

// validar rechaza rápido, antes de tomar ningún bloqueo.
func (in *TrasladoInput) validar() error {
	if in.NumeroBoleta == "" || in.CodigoArticulo == "" || in.TipoBoleta == "" {
		return domain.ErrInvalidInput
	}
	if !in.Cantidad.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if !in.Origen.Valido() || !in.Destino.Valido() || in.Origen == in.Destino {
		return domain.ErrParEstadosInvalido
	}
	if !entity.TrasladoPermitido(in.Origen, in.Destino) {
		return domain.ErrParEstadosInvalido
	}
	if in.Destino == entity.EstadoDespachado && in.NumeroManifiesto == "" {
		return domain.ErrManifiestoRequerido
	}
	return nil
}

// Trasladar mueve Cantidad del estado Origen al Destino para la fila de
// saldos (boleta, artículo, tipo). Si el destino es despachado, anexa la
// cantidad a la línea del manifiesto (creando línea y, confirmado, cabecera)
// y mantiene peso_local en sincronía. Registra el movimiento en auditoría.
// Dos llamadas idénticas son dos eventos independientes, nunca un no-op.
func (uc *UseCase) Trasladar(ctx context.Context, in TrasladoInput) (*TrasladoResult, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	fecha := in.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}

	var result TrasladoResult
	err := uc.txRunner.Run(ctx, func(
		saldoRepo repository.SaldoRepository,
		manifRepo repository.ManifiestoRepository,
		movRepo repository.MovimientoRepository,
	) error {
		// Bloquea la fila de saldos (SELECT FOR UPDATE): dos traslados
		// concurrentes sobre la misma llave se serializan aquí.
		saldo, err := saldoRepo.GetForUpdate(ctx, in.NumeroBoleta, in.CodigoArticulo, in.TipoBoleta)
		if err != nil {
			return err
		}
		if saldo == nil {
			return domain.ErrNotFound
		}
		if saldo.Saldo(in.Origen).LessThan(in.Cantidad) {
			return domain.ErrCantidadInsuficiente
		}

		saldo.AplicarDelta(in.Origen, in.Destino, in.Cantidad)
		saldo.UpdatedAt = fecha
		if err := saldoRepo.UpdateSaldos(ctx, saldo); err != nil {
			return err
		}

		if in.Destino == entity.EstadoDespachado {
			if err := uc.anexarAManifiesto(ctx, manifRepo, in, fecha); err != nil {
				return err
			}
		}

		mov := &entity.Movimiento{
			ID:               uuid.New().String(),
			NumeroBoleta:     in.NumeroBoleta,
			CodigoArticulo:   in.CodigoArticulo,
			TipoBoleta:       in.TipoBoleta,
			Descripcion:      saldo.DescripcionArticulo,
			Tipo:             entity.MovimientoTraslado,
			Origen:           in.Origen,
			Destino:          in.Destino,
			NumeroManifiesto: in.NumeroManifiesto,
			Cantidad:         in.Cantidad,
			Usuario:          in.Usuario,
			Fecha:            fecha,
			CreatedAt:        time.Now(),
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}

		result.Saldo = saldo
		result.MovimientoID = mov.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// anexarAManifiesto crea la cabecera si hace falta (y está confirmado),
// suma la cantidad a la línea y al peso denormalizado.
func (uc *UseCase) anexarAManifiesto(ctx context.Context, manifRepo repository.ManifiestoRepository, in TrasladoInput, fecha time.Time) error {
	header, err := manifRepo.GetHeader(ctx, in.NumeroManifiesto)
	if err != nil {
		return err
	}
	if header == nil {
		if !in.CrearManifiesto {
			// El caller no confirmó la creación: obligamos al protocolo
			// de dos pasos en vez de crear cabeceras en silencio.
			return domain.ErrNotFound
		}
		header = &entity.Manifiesto{
			Numero:    in.NumeroManifiesto,
			Fecha:     fecha,
			PesoLocal: decimal.Zero,
			Estado:    entity.ManifiestoAbierto,
			CreatedAt: time.Now(),
		}
		if err := manifRepo.CreateHeader(ctx, header); err != nil {
			return err
		}
	}
	linea := &entity.ManifiestoLinea{
		NumeroManifiesto: in.NumeroManifiesto,
		NumeroBoleta:     in.NumeroBoleta,
		CodigoArticulo:   in.CodigoArticulo,
		TipoBoleta:       in.TipoBoleta,
		Cantidad:         in.Cantidad,
	}
	if err := manifRepo.AddLinea(ctx, linea); err != nil {
		return err
	}
	return manifRepo.AddPesoLocal(ctx, in.NumeroManifiesto, in.Cantidad)
}
