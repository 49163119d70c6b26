package assets

import "errors"

var (
	// ErrCodeExists is raised by the explicit pre-insert check so a
	// duplicate code yields a 409 instead of a generic failure.
	ErrCodeExists = errors.New("el código de activo ya existe")

	ErrInvalidStatus = errors.New("status de activo inválido")
	ErrInvalidDate   = errors.New("formato de fecha inválido, se espera YYYY-MM-DD")
)
