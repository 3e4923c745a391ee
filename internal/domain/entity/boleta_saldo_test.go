package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/boletas-api/internal/domain/entity"
)

func saldoDePrueba() *entity.BoletaSaldo {
	return &entity.BoletaSaldo{
		NumeroBoleta:   "B100",
		CodigoArticulo: "A1",
		TipoBoleta:     "ENTRADA",
		Cantidad:       decimal.NewFromInt(100),
		Bodega:         decimal.NewFromInt(100),
	}
}

func TestAplicarDelta_MueveEntreEstados(t *testing.T) {
	s := saldoDePrueba()
	s.AplicarDelta(entity.EstadoBodega, entity.EstadoProceso, decimal.NewFromInt(40))

	assert.True(t, s.Bodega.Equal(decimal.NewFromInt(60)))
	assert.True(t, s.Proceso.Equal(decimal.NewFromInt(40)))
	assert.True(t, s.Conservada(), "la suma de estados debe seguir igual a la cantidad")
}

func TestConservada_DetectaDescuadre(t *testing.T) {
	s := saldoDePrueba()
	assert.True(t, s.Conservada())

	s.Proceso = decimal.NewFromInt(5) // suma 105 > cantidad 100
	assert.False(t, s.Conservada())

	s.Proceso = decimal.Zero
	s.Bodega = decimal.NewFromInt(-1)
	assert.False(t, s.Conservada(), "un estado negativo rompe el invariante")
}

func TestSaldo_PorEstado(t *testing.T) {
	s := saldoDePrueba()
	s.Proceso = decimal.NewFromInt(7)

	assert.True(t, s.Saldo(entity.EstadoBodega).Equal(decimal.NewFromInt(100)))
	assert.True(t, s.Saldo(entity.EstadoProceso).Equal(decimal.NewFromInt(7)))
	assert.True(t, s.Saldo(entity.EstadoTerminado).IsZero())
	assert.True(t, s.Saldo(entity.EstadoCustodia("PATIO")).IsZero(), "estado desconocido devuelve cero")
}
