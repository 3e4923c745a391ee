package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrasladoRequest body para POST /api/boletas/traslados.
// CrearManifiesto confirma la creación de un manifiesto nuevo; si el número
// no existe y no viene confirmada, el traslado se rechaza (protocolo de
// confirmación en dos pasos con GET /api/manifiestos/:numero).
type TrasladoRequest struct {
	NumeroBoleta     string          `json:"numero_boleta"`
	CodigoArticulo   string          `json:"codigo_articulo"`
	TipoBoleta       string          `json:"tipo_boleta"`
	Origen           string          `json:"origen"`
	Destino          string          `json:"destino"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Fecha            *time.Time      `json:"fecha,omitempty"`
	NumeroManifiesto string          `json:"numero_manifiesto,omitempty"`
	CrearManifiesto  bool            `json:"crear_manifiesto,omitempty"`
}

// ReversaRequest body para POST /api/manifiestos/reversas.
type ReversaRequest struct {
	NumeroManifiesto string          `json:"numero_manifiesto"`
	NumeroBoleta     string          `json:"numero_boleta"`
	TipoBoleta       string          `json:"tipo_boleta"`
	CodigoArticulo   string          `json:"codigo_articulo"`
	Cantidad         decimal.Decimal `json:"cantidad"`
}

// SaldoDTO snapshot de una fila de saldos para respuestas y listados.
type SaldoDTO struct {
	NumeroBoleta        string          `json:"numero_boleta"`
	CodigoArticulo      string          `json:"codigo_articulo"`
	TipoBoleta          string          `json:"tipo_boleta"`
	Cliente             string          `json:"cliente,omitempty"`
	DescripcionArticulo string          `json:"descripcion_articulo,omitempty"`
	Fecha               time.Time       `json:"fecha"`
	Cantidad            decimal.Decimal `json:"cantidad"`
	Bodega              decimal.Decimal `json:"bodega"`
	Proceso             decimal.Decimal `json:"proceso"`
	Terminado           decimal.Decimal `json:"terminado"`
	Despachado          decimal.Decimal `json:"despachado"`
}

// TrasladoResponse respuesta de un traslado aceptado.
type TrasladoResponse struct {
	Saldo        SaldoDTO `json:"saldo"`
	MovimientoID string   `json:"movimiento_id"`
}

// ReversaResponse respuesta de una reversa aceptada, con cantidades
// antes/después de la línea para mostrarlas al operador.
type ReversaResponse struct {
	Saldo            SaldoDTO        `json:"saldo"`
	MovimientoID     string          `json:"movimiento_id"`
	LineaEliminada   bool            `json:"linea_eliminada"`
	CantidadAnterior decimal.Decimal `json:"cantidad_anterior"`
	CantidadNueva    decimal.Decimal `json:"cantidad_nueva"`
}

// MovimientoDTO registro del log de auditoría para listados.
type MovimientoDTO struct {
	ID               string          `json:"id"`
	NumeroBoleta     string          `json:"numero_boleta"`
	CodigoArticulo   string          `json:"codigo_articulo"`
	TipoBoleta       string          `json:"tipo_boleta"`
	Tipo             string          `json:"tipo"`
	Etiqueta         string          `json:"etiqueta"`
	Descripcion      string          `json:"descripcion,omitempty"`
	NumeroManifiesto string          `json:"numero_manifiesto,omitempty"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Usuario          string          `json:"usuario"`
	Fecha            time.Time       `json:"fecha"`
}
