package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del manifiesto. El cierre/reapertura lo maneja otro módulo;
// aquí solo se crea ABIERTO.
const (
	ManifiestoAbierto = "ABIERTO"
	ManifiestoCerrado = "CERRADO"
)

// Manifiesto es la cabecera del documento de transporte: agrupa líneas
// despachadas bajo un número asignado por el operador.
// PesoLocal es la suma denormalizada de las cantidades de sus líneas.
type Manifiesto struct {
	Numero    string
	Fecha     time.Time
	PesoLocal decimal.Decimal
	Estado    string
	CreatedAt time.Time
}

// ManifiestoLinea liga un manifiesto con una cantidad despachada de una
// boleta+artículo. Cantidad siempre > 0: una línea totalmente reversada
// se elimina, no se deja en cero.
type ManifiestoLinea struct {
	NumeroManifiesto string
	NumeroBoleta     string
	CodigoArticulo   string
	TipoBoleta       string
	Cantidad         decimal.Decimal
}
