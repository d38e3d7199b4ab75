package structs

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrNotFound        = errors.New("not found")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrCartEmpty       = errors.New("cart is empty")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrSessionNotFound = errors.New("session not found")
)
