package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	// ErrInvalidCredentials es genérico a propósito: nunca distingue
	// "usuario inexistente" de "password incorrecto".
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountInactive    = errors.New("cuenta inactiva")
	ErrLoginDisabled      = errors.New("inicio de sesión deshabilitado")
	ErrNoFieldsToUpdate   = errors.New("no hay campos para actualizar")
)

// ValidationError agrupa violaciones de validación campo → mensaje.
type ValidationError struct {
	Fields map[string]string
}

// Error implementa error.
func (e *ValidationError) Error() string {
	return "validación fallida"
}

// NewValidationError construye un ValidationError a partir del mapa de campos.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
