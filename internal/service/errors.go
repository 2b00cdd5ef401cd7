package service

import "errors"

// Expected, recoverable error conditions. Handlers translate these into
// user-visible responses; anything else is logged and returned as a generic
// failure.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrBrandNameTaken     = errors.New("brand name already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("operation not permitted")
)
