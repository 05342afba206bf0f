package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrAlreadyProcessed = errors.New("already processed")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")

	// ErrMisconfigured is reported when settings lack requisites for a tax category.
	// It matches ErrNotFound so that callers treat it as an absent payment.
	ErrMisconfigured = fmt.Errorf("%w: requisites are not configured", ErrNotFound)
)
