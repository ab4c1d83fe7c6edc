package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrDatabaseURLMissing = errors.New("POSTGRES_URL is not set")
	ErrHashPassword       = errors.New("no se pudo hashear la contraseña")
	ErrInvalidFixture     = errors.New("fixture inválido")
)
