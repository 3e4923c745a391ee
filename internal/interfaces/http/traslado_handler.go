package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boletas-api/internal/application/dto"
	"github.com/jhoicas/boletas-api/internal/application/traslado"
	"github.com/jhoicas/boletas-api/internal/domain"
	"github.com/jhoicas/boletas-api/internal/domain/entity"
)

// TrasladoHandler maneja las peticiones HTTP del motor de traslados y
// reversas (protegido).
type TrasladoHandler struct {
	uc *traslado.UseCase
}

// NewTrasladoHandler construye el handler.
func NewTrasladoHandler(uc *traslado.UseCase) *TrasladoHandler {
	return &TrasladoHandler{uc: uc}
}

// errorResponse mapea los errores de dominio a códigos HTTP con un código
// tipado que el front puede traducir a un mensaje preciso.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrParEstadosInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FIELD_PAIR", Message: "traslado entre estados no permitido"})
	case errors.Is(err, domain.ErrManifiestoRequerido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MANIFEST_REQUIRED", Message: "destino despachado requiere número de manifiesto"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrCantidadInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_QUANTITY", Message: "cantidad insuficiente en el estado de origen"})
	case errors.Is(err, domain.ErrCantidadManifiestoInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_MANIFEST_QUANTITY", Message: "cantidad insuficiente en la línea del manifiesto"})
	case errors.Is(err, domain.ErrManifiestoDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_MANIFEST_NUMBER", Message: "el número de manifiesto ya existe"})
	case errors.Is(err, domain.ErrEstadoInconsistente):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INCONSISTENT_STATE", Message: "estado inconsistente entre saldo y manifiesto"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func saldoDTO(s *entity.BoletaSaldo) dto.SaldoDTO {
	return dto.SaldoDTO{
		NumeroBoleta:        s.NumeroBoleta,
		CodigoArticulo:      s.CodigoArticulo,
		TipoBoleta:          s.TipoBoleta,
		Cliente:             s.Cliente,
		DescripcionArticulo: s.DescripcionArticulo,
		Fecha:               s.Fecha,
		Cantidad:            s.Cantidad,
		Bodega:              s.Bodega,
		Proceso:             s.Proceso,
		Terminado:           s.Terminado,
		Despachado:          s.Despachado,
	}
}

// Trasladar registra un traslado de custodia.
// POST /api/boletas/traslados
func (h *TrasladoHandler) Trasladar(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.TrasladoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := traslado.TrasladoInput{
		NumeroBoleta:     in.NumeroBoleta,
		CodigoArticulo:   in.CodigoArticulo,
		TipoBoleta:       in.TipoBoleta,
		Origen:           entity.EstadoCustodia(in.Origen),
		Destino:          entity.EstadoCustodia(in.Destino),
		Cantidad:         in.Cantidad,
		NumeroManifiesto: in.NumeroManifiesto,
		CrearManifiesto:  in.CrearManifiesto,
		Usuario:          userID,
	}
	if in.Fecha != nil {
		input.Fecha = *in.Fecha
	}
	result, err := h.uc.Trasladar(c.Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}
	trasladosTotal.WithLabelValues(string(input.Origen), string(input.Destino)).Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.TrasladoResponse{
		Saldo:        saldoDTO(result.Saldo),
		MovimientoID: result.MovimientoID,
	})
}

// Reversar deshace una línea de manifiesto, total o parcialmente.
// POST /api/manifiestos/reversas
func (h *TrasladoHandler) Reversar(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ReversaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.ReversarLinea(c.Context(), traslado.ReversaInput{
		NumeroManifiesto: in.NumeroManifiesto,
		NumeroBoleta:     in.NumeroBoleta,
		TipoBoleta:       in.TipoBoleta,
		CodigoArticulo:   in.CodigoArticulo,
		Cantidad:         in.Cantidad,
		Usuario:          userID,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	reversasTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.ReversaResponse{
		Saldo:            saldoDTO(result.Saldo),
		MovimientoID:     result.MovimientoID,
		LineaEliminada:   result.LineaEliminada,
		CantidadAnterior: result.CantidadAnterior,
		CantidadNueva:    result.CantidadNueva,
	})
}
