package traslado

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/boletas-api/internal/domain"
	"github.com/jhoicas/boletas-api/internal/domain/entity"
	"github.com/jhoicas/boletas-api/internal/domain/repository"
)

// ReversaInput entrada para ReversarLinea: la reversa se dirige por una
// línea de manifiesto, no por un par origen/destino libre.
type ReversaInput struct {
	NumeroManifiesto string
	NumeroBoleta     string
	TipoBoleta       string
	CodigoArticulo   string
	Cantidad         decimal.Decimal
	Usuario          string
}

// ReversaResult resultado de una reversa aceptada, con las cantidades de la
// línea antes y después para mostrarlas al operador.
type ReversaResult struct {
	Saldo            *entity.BoletaSaldo
	MovimientoID     string
	LineaEliminada   bool
	CantidadAnterior decimal.Decimal
	CantidadNueva    decimal.Decimal
}

func (in *ReversaInput) validar() error {
	if in.NumeroManifiesto == "" || in.NumeroBoleta == "" || in.CodigoArticulo == "" || in.TipoBoleta == "" {
		return domain.ErrInvalidInput
	}
	if !in.Cantidad.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// ReversarLinea deshace un despacho previamente registrado: devuelve la
// cantidad de despachado a bodega, reduce o elimina la línea del manifiesto
// (eliminada cuando queda en cero, nunca se deja una línea en cero), resta el
// peso de la cabecera y registra la reversa en auditoría. Todo en una
// transacción; cualquier fallo revierte las tres mutaciones juntas.
func (uc *UseCase) ReversarLinea(ctx context.Context, in ReversaInput) (*ReversaResult, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}

	var result ReversaResult
	err := uc.txRunner.Run(ctx, func(
		saldoRepo repository.SaldoRepository,
		manifRepo repository.ManifiestoRepository,
		movRepo repository.MovimientoRepository,
	) error {
		// Mismo orden de bloqueo que Trasladar: saldo primero, línea
		// después, para que traslado y reversa concurrentes no se
		// abracen en deadlock.
		saldo, err := saldoRepo.GetForUpdate(ctx, in.NumeroBoleta, in.CodigoArticulo, in.TipoBoleta)
		if err != nil {
			return err
		}
		if saldo == nil {
			return domain.ErrNotFound
		}

		linea, err := manifRepo.GetLineaForUpdate(ctx, in.NumeroManifiesto, in.NumeroBoleta, in.CodigoArticulo, in.TipoBoleta)
		if err != nil {
			return err
		}
		if linea == nil {
			return domain.ErrNotFound
		}
		if linea.Cantidad.LessThan(in.Cantidad) {
			return domain.ErrCantidadManifiestoInsuficiente
		}
		if saldo.Despachado.LessThan(in.Cantidad) {
			// La línea dice que hay más despachado del que registra el
			// saldo: un bug previo dejó los datos descuadrados.
			uc.log.Error().
				Str("numero_boleta", in.NumeroBoleta).
				Str("codigo_articulo", in.CodigoArticulo).
				Str("numero_manifiesto", in.NumeroManifiesto).
				Str("despachado", saldo.Despachado.String()).
				Str("linea", linea.Cantidad.String()).
				Msg("saldo despachado menor que la línea del manifiesto")
			return domain.ErrEstadoInconsistente
		}

		result.CantidadAnterior = linea.Cantidad
		result.CantidadNueva = linea.Cantidad.Sub(in.Cantidad)
		if result.CantidadNueva.IsPositive() {
			if err := manifRepo.UpdateLineaCantidad(ctx, in.NumeroManifiesto, in.NumeroBoleta, in.CodigoArticulo, in.TipoBoleta, result.CantidadNueva); err != nil {
				return err
			}
		} else {
			if err := manifRepo.DeleteLinea(ctx, in.NumeroManifiesto, in.NumeroBoleta, in.CodigoArticulo, in.TipoBoleta); err != nil {
				return err
			}
			result.LineaEliminada = true
		}
		// peso_local acompaña siempre a la suma de líneas, también en reversas.
		if err := manifRepo.AddPesoLocal(ctx, in.NumeroManifiesto, in.Cantidad.Neg()); err != nil {
			return err
		}

		saldo.AplicarDelta(entity.EstadoDespachado, entity.EstadoBodega, in.Cantidad)
		saldo.UpdatedAt = time.Now()
		if err := saldoRepo.UpdateSaldos(ctx, saldo); err != nil {
			return err
		}

		mov := &entity.Movimiento{
			ID:               uuid.New().String(),
			NumeroBoleta:     in.NumeroBoleta,
			CodigoArticulo:   in.CodigoArticulo,
			TipoBoleta:       in.TipoBoleta,
			Descripcion:      saldo.DescripcionArticulo,
			Tipo:             entity.MovimientoReversa,
			Origen:           entity.EstadoDespachado,
			Destino:          entity.EstadoBodega,
			NumeroManifiesto: in.NumeroManifiesto,
			Cantidad:         in.Cantidad,
			Usuario:          in.Usuario,
			Fecha:            time.Now(),
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
