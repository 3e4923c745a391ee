package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers HTTP los mapean a códigos de estado con errors.Is.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrCantidadInsuficiente: la cantidad pedida excede el saldo del estado de origen.
	ErrCantidadInsuficiente = errors.New("cantidad insuficiente en el estado de origen")
	// ErrCantidadManifiestoInsuficiente: la reversa pide más de lo que tiene la línea del manifiesto.
	ErrCantidadManifiestoInsuficiente = errors.New("cantidad insuficiente en la línea del manifiesto")
	// ErrParEstadosInvalido: origen == destino o dirección de traslado no permitida.
	ErrParEstadosInvalido = errors.New("traslado entre estados no permitido")
	// ErrManifiestoRequerido: traslado a despachado sin número de manifiesto.
	ErrManifiestoRequerido = errors.New("traslado a despachado requiere número de manifiesto")
	ErrManifiestoDuplicado = errors.New("el número de manifiesto ya existe")

	// ErrEstadoInconsistente: el saldo despachado y la línea del manifiesto no cuadran.
	// Indica un bug previo, no un error del operador; se loguea con severidad alta.
	ErrEstadoInconsistente = errors.New("estado inconsistente entre saldo y manifiesto")
)
