package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boletas-api/internal/application/dto"
	"github.com/jhoicas/boletas-api/internal/application/saldo"
	"github.com/jhoicas/boletas-api/internal/domain/entity"
	"github.com/jhoicas/boletas-api/internal/domain/repository"
)

// SaldoHandler consultas de solo lectura sobre saldos y auditoría (protegido).
type SaldoHandler struct {
	uc *saldo.UseCase
}

// NewSaldoHandler construye el handler.
func NewSaldoHandler(uc *saldo.UseCase) *SaldoHandler {
	return &SaldoHandler{uc: uc}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// Listar filas de saldos con búsqueda libre, rango de fechas, filtro de
// ceros por estado y paginación.
// GET /api/boletas/saldos?buscar=&desde=&hasta=&ocultar_cero_en=&limit=&offset=
func (h *SaldoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	f := repository.SaldoFilter{
		Buscar: c.Query("buscar"),
		Desde:  parseDate(c.Query("desde")),
		Hasta:  parseDate(c.Query("hasta")),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if v := c.Query("ocultar_cero_en"); v != "" {
		estado := entity.EstadoCustodia(v)
		f.OcultarCeroEn = &estado
	}

	list, total, err := h.uc.Listar(c.Context(), f)
	if err != nil {
		return errorResponse(c, err)
	}
	saldos := make([]dto.SaldoDTO, 0, len(list))
	for _, s := range list {
		saldos = append(saldos, saldoDTO(s))
	}
	return c.JSON(fiber.Map{
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
		"saldos": saldos,
	})
}

// Movimientos historial de auditoría de una boleta.
// GET /api/boletas/movimientos?numero_boleta=&desde=&hasta=&limit=&offset=
func (h *SaldoHandler) Movimientos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	list, err := h.uc.Movimientos(c.Context(), c.Query("numero_boleta"),
		parseDate(c.Query("desde")), parseDate(c.Query("hasta")), page.Limit, page.Offset)
	if err != nil {
		return errorResponse(c, err)
	}
	movs := make([]dto.MovimientoDTO, 0, len(list))
	for _, m := range list {
		movs = append(movs, dto.MovimientoDTO{
			ID:               m.ID,
			NumeroBoleta:     m.NumeroBoleta,
			CodigoArticulo:   m.CodigoArticulo,
			TipoBoleta:       m.TipoBoleta,
			Tipo:             m.Tipo,
			Etiqueta:         m.Etiqueta(),
			Descripcion:      m.Descripcion,
			NumeroManifiesto: m.NumeroManifiesto,
			Cantidad:         m.Cantidad,
			Usuario:          m.Usuario,
			Fecha:            m.Fecha,
		})
	}
	return c.JSON(fiber.Map{
		"total":       len(movs),
		"movimientos": movs,
	})
}
