package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boletas-api/internal/application/dto"
	"github.com/jhoicas/boletas-api/internal/application/manifiesto"
)

// ManifiestoHandler maneja las peticiones HTTP del registro de manifiestos
// (protegido).
type ManifiestoHandler struct {
	uc *manifiesto.UseCase
}

// NewManifiestoHandler construye el handler.
func NewManifiestoHandler(uc *manifiesto.UseCase) *ManifiestoHandler {
	return &ManifiestoHandler{uc: uc}
}

// Resolver chequeo de existencia para el diálogo crear-vs-anexar.
// GET /api/manifiestos/:numero
func (h *ManifiestoHandler) Resolver(c *fiber.Ctx) error {
	numero := c.Params("numero")
	existe, err := h.uc.Resolver(c.Context(), numero)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.ResolverManifiestoResponse{Numero: numero, Existe: existe})
}

// Detalle cabecera más líneas del manifiesto.
// GET /api/manifiestos/:numero/lineas
func (h *ManifiestoHandler) Detalle(c *fiber.Ctx) error {
	numero := c.Params("numero")
	header, lineas, err := h.uc.Detalle(c.Context(), numero)
	if err != nil {
		return errorResponse(c, err)
	}
	resp := dto.ManifiestoDetalleResponse{
		Numero:    header.Numero,
		Fecha:     header.Fecha,
		PesoLocal: header.PesoLocal,
		Estado:    header.Estado,
		Lineas:    make([]dto.ManifiestoLineaDTO, 0, len(lineas)),
	}
	for _, l := range lineas {
		resp.Lineas = append(resp.Lineas, dto.ManifiestoLineaDTO{
			NumeroBoleta:   l.NumeroBoleta,
			CodigoArticulo: l.CodigoArticulo,
			TipoBoleta:     l.TipoBoleta,
			Cantidad:       l.Cantidad,
		})
	}
	return c.JSON(resp)
}

// Renumerar reescribe el número del manifiesto en cabecera y líneas.
// PUT /api/manifiestos/renumerar
func (h *ManifiestoHandler) Renumerar(c *fiber.Ctx) error {
	var in dto.RenumerarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cabeceras, lineas, err := h.uc.Renumerar(c.Context(), in.NumeroViejo, in.NumeroNuevo)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.RenumerarResponse{Cabeceras: cabeceras, Lineas: lineas})
}
