package errs

import "errors"

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyAsunto       = errors.New("asunto is required")
	ErrEmptyMensaje      = errors.New("mensaje is required")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrMissingTipo       = errors.New("tipo_problema_id is required")
)
