package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidSortKey    = errors.New("criterio de orden desconocido")
	ErrSourceUnavailable = errors.New("fuente del catálogo no disponible")
)
