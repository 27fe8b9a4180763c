package service

import (
	"errors"

	"main/domain"
)

// Business-rule errors are expected outcomes and carry their own message.
// ErrInternal is the only kind that hides its cause; the cause is logged at
// the point of detection and never crosses the service boundary.
var (
	ErrUserNotFound        = domain.ErrUserNotFound
	ErrNoData              = errors.New("no records to query")
	ErrInvalidPageNumber   = errors.New("invalid page number")
	ErrInsufficientBalance = errors.New("insufficient balance for the operation")
	ErrInvalidTransaction  = errors.New("invalid transaction")
	ErrMalformedInput      = errors.New("import file could not be parsed")
	ErrInternal            = errors.New("internal error")
)
