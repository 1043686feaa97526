package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrInsufficientStock     = errors.New("stock insuficiente")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")
	ErrUnauthorized          = errors.New("usuario o contraseña incorrectos")
	ErrDuplicate             = errors.New("recurso duplicado")
)
