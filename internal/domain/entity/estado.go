package entity

// EstadoCustodia es uno de los cuatro estados en que puede estar una cantidad
// de material de una boleta.
type EstadoCustodia string

const (
	EstadoBodega     EstadoCustodia = "BODEGA"
	EstadoProceso    EstadoCustodia = "PROCESO"
	EstadoTerminado  EstadoCustodia = "TERMINADO"
	EstadoDespachado EstadoCustodia = "DESPACHADO"
)

// Valido indica si el string corresponde a un estado de custodia conocido.
func (e EstadoCustodia) Valido() bool {
	switch e {
	case EstadoBodega, EstadoProceso, EstadoTerminado, EstadoDespachado:
		return true
	}
	return false
}

// Nombre legible para etiquetas de movimiento.
func (e EstadoCustodia) Nombre() string {
	switch e {
	case EstadoBodega:
		return "Bodega"
	case EstadoProceso:
		return "Proceso"
	case EstadoTerminado:
		return "Terminado"
	case EstadoDespachado:
		return "Despachado"
	}
	return string(e)
}

// traslados permitidos por regla de negocio: el material solo avanza.
// El único camino de regreso a bodega es la reversa de una línea de manifiesto.
var trasladosPermitidos = map[EstadoCustodia][]EstadoCustodia{
	EstadoBodega:    {EstadoProceso, EstadoTerminado, EstadoDespachado},
	EstadoProceso:   {EstadoTerminado, EstadoDespachado},
	EstadoTerminado: {EstadoDespachado},
}

// TrasladoPermitido indica si mover cantidad de origen a destino es una
// transición válida del motor de traslados.
func TrasladoPermitido(origen, destino EstadoCustodia) bool {
	for _, d := range trasladosPermitidos[origen] {
		if d == destino {
			return true
		}
	}
	return false
}
