package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BoletaSaldo es la fila autoritativa de saldos por (boleta, artículo, tipo).
// Cantidad es el total registrado al crear la línea y no cambia después;
// los cuatro estados reparten ese total en todo momento.
type BoletaSaldo struct {
	NumeroBoleta        string
	CodigoArticulo      string
	TipoBoleta          string
	Cliente             string
	DescripcionArticulo string
	Fecha               time.Time

	Cantidad   decimal.Decimal
	Bodega     decimal.Decimal
	Proceso    decimal.Decimal
	Terminado  decimal.Decimal
	Despachado decimal.Decimal

	UpdatedAt time.Time
}

// Saldo devuelve la cantidad en el estado indicado.
func (s *BoletaSaldo) Saldo(e EstadoCustodia) decimal.Decimal {
	switch e {
	case EstadoBodega:
		return s.Bodega
	case EstadoProceso:
		return s.Proceso
	case EstadoTerminado:
		return s.Terminado
	case EstadoDespachado:
		return s.Despachado
	}
	return decimal.Zero
}

// SetSaldo fija la cantidad del estado indicado.
func (s *BoletaSaldo) SetSaldo(e EstadoCustodia, v decimal.Decimal) {
	switch e {
	case EstadoBodega:
		s.Bodega = v
	case EstadoProceso:
		s.Proceso = v
	case EstadoTerminado:
		s.Terminado = v
	case EstadoDespachado:
		s.Despachado = v
	}
}

// AplicarDelta mueve cantidad del estado origen al destino, en memoria.
// El caller valida disponibilidad y persiste; aquí no se verifica nada.
func (s *BoletaSaldo) AplicarDelta(origen, destino EstadoCustodia, cantidad decimal.Decimal) {
	s.SetSaldo(origen, s.Saldo(origen).Sub(cantidad))
	s.SetSaldo(destino, s.Saldo(destino).Add(cantidad))
}

// Conservada verifica el invariante de conservación:
// bodega + proceso + terminado + despachado == cantidad, sin negativos.
func (s *BoletaSaldo) Conservada() bool {
	for _, v := range []decimal.Decimal{s.Bodega, s.Proceso, s.Terminado, s.Despachado} {
		if v.IsNegative() {
			return false
		}
	}
	suma := s.Bodega.Add(s.Proceso).Add(s.Terminado).Add(s.Despachado)
	return suma.Equal(s.Cantidad)
}
