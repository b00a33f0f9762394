package domain

import "errors"

// Errores de dominio (sin dependencias externas). La ausencia de un registro
// en lecturas se señala con nil, nil desde los repositorios; estos errores
// cubren el resto de condiciones que el llamador debe distinguir.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("credenciales inválidas")
)
