package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La capa API los expone vía errors.Is sobre su error tipado.
var (
	ErrNoEncontrado   = errors.New("recurso no encontrado")
	ErrNoAutorizado   = errors.New("no autorizado")
	ErrProhibido      = errors.New("acceso denegado")
	ErrValidacion     = errors.New("entrada inválida")
	ErrConflicto      = errors.New("conflicto con el estado actual")
	ErrTransporte     = errors.New("fallo de red o transporte")
	ErrEstadoWorkflow = errors.New("operación no permitida en el estado actual")
)
