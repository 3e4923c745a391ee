package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del log de auditoría.
const (
	MovimientoTraslado = "TRASLADO"
	MovimientoReversa  = "REVERSA"
)

// Movimiento es un registro inmutable del log de auditoría: uno por cada
// traslado o reversa aceptado. Nunca se actualiza ni se borra.
// El hecho auditado es tipado (Tipo, Origen, Destino, NumeroManifiesto);
// la etiqueta legible se deriva con Etiqueta() al persistir.
type Movimiento struct {
	ID               string
	NumeroBoleta     string
	CodigoArticulo   string
	TipoBoleta       string
	Descripcion      string
	Tipo             string
	Origen           EstadoCustodia
	Destino          EstadoCustodia
	NumeroManifiesto string
	Cantidad         decimal.Decimal
	Usuario          string
	Fecha            time.Time
	CreatedAt        time.Time
}

// Etiqueta deriva la narrativa legible del movimiento a partir del hecho
// tipado. Se usa en el borde de persistencia y en reportes; el motor y los
// tests trabajan sobre los campos tipados.
func (m *Movimiento) Etiqueta() string {
	if m.Tipo == MovimientoReversa {
		return fmt.Sprintf("Reversa de Manifiesto (%s) a Bodega", m.NumeroManifiesto)
	}
	if m.Destino == EstadoDespachado && m.NumeroManifiesto != "" {
		return fmt.Sprintf("De %s a %s (Manifiesto %s)", m.Origen.Nombre(), m.Destino.Nombre(), m.NumeroManifiesto)
	}
	return fmt.Sprintf("De %s a %s", m.Origen.Nombre(), m.Destino.Nombre())
}
