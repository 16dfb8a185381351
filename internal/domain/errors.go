package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrInUse           = errors.New("recurso referenciado por otros registros")
	ErrDataCorrupted   = errors.New("datos corruptos en el almacén")
	ErrAccountLocked   = errors.New("cuenta bloqueada temporalmente")
	ErrAccountInactive = errors.New("cuenta desactivada")
	ErrWrongPassword   = errors.New("credenciales incorrectas")
	ErrStoreTimeout    = errors.New("la conexión con la base de datos tardó demasiado, intente de nuevo")
)
