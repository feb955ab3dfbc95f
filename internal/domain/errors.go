package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrModuleRegistered = errors.New("el módulo ya está registrado")
	ErrModuleNotFound   = errors.New("módulo no encontrado")
	ErrModuleInUse      = errors.New("el módulo está activo para al menos un tenant")
	ErrInvalidNAICS     = errors.New("código NAICS inválido")
	ErrUnknownTemplate  = errors.New("plantilla de industria desconocida")
)
