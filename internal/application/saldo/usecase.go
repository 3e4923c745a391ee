package saldo

import (
	"context"
	"time"

	"github.com/jhoicas/boletas-api/internal/domain"
	"github.com/jhoicas/boletas-api/internal/domain/entity"
	"github.com/jhoicas/boletas-api/internal/domain/repository"
)

// UseCase consultas de solo lectura sobre saldos y auditoría. No es parte
// del núcleo transaccional: los repos van atados al pool, sin bloqueos.
type UseCase struct {
	saldoRepo repository.SaldoRepository
	movRepo   repository.MovimientoRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(saldoRepo repository.SaldoRepository, movRepo repository.MovimientoRepository) *UseCase {
	return &UseCase{saldoRepo: saldoRepo, movRepo: movRepo}
}

// Listar devuelve las filas de saldos que cumplen el filtro más el total
// sin paginar (búsqueda libre, rango de fechas, ocultar ceros por estado).
func (uc *UseCase) Listar(ctx context.Context, f repository.SaldoFilter) ([]*entity.BoletaSaldo, int, error) {
	if f.OcultarCeroEn != nil && !f.OcultarCeroEn.Valido() {
		return nil, 0, domain.ErrInvalidInput
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return uc.saldoRepo.List(ctx, f)
}

// Movimientos lista el historial de auditoría de una boleta.
func (uc *UseCase) Movimientos(ctx context.Context, numeroBoleta string, from, to *time.Time, limit, offset int) ([]*entity.Movimiento, error) {
	if numeroBoleta == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.movRepo.ListByBoleta(ctx, numeroBoleta, from, to, limit, offset)
}
