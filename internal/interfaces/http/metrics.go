package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de operaciones aceptadas; los rechazos no cuentan porque no
// tienen efecto alguno.
var (
	trasladosTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boletas_traslados_total",
		Help: "Traslados de custodia aceptados, por origen y destino.",
	}, []string{"origen", "destino"})

	reversasTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boletas_reversas_total",
		Help: "Reversas de líneas de manifiesto aceptadas.",
	})
)
