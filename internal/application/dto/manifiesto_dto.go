package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResolverManifiestoResponse respuesta del chequeo de existencia que alimenta
// el diálogo crear-vs-anexar.
type ResolverManifiestoResponse struct {
	Numero string `json:"numero"`
	Existe bool   `json:"existe"`
}

// RenumerarRequest body para PUT /api/manifiestos/renumerar.
type RenumerarRequest struct {
	NumeroViejo string `json:"numero_viejo"`
	NumeroNuevo string `json:"numero_nuevo"`
}

// RenumerarResponse filas afectadas por la renumeración.
type RenumerarResponse struct {
	Cabeceras int64 `json:"cabeceras"`
	Lineas    int64 `json:"lineas"`
}

// ManifiestoLineaDTO línea de manifiesto para el detalle.
type ManifiestoLineaDTO struct {
	NumeroBoleta   string          `json:"numero_boleta"`
	CodigoArticulo string          `json:"codigo_articulo"`
	TipoBoleta     string          `json:"tipo_boleta"`
	Cantidad       decimal.Decimal `json:"cantidad"`
}

// ManifiestoDetalleResponse cabecera más líneas, para que el operador pueda
// verificar que peso_local cuadra con la suma de líneas.
type ManifiestoDetalleResponse struct {
	Numero    string               `json:"numero"`
	Fecha     time.Time            `json:"fecha"`
	PesoLocal decimal.Decimal      `json:"peso_local"`
	Estado    string               `json:"estado"`
	Lineas    []ManifiestoLineaDTO `json:"lineas"`
}
