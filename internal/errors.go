package internal

import (
	"errors"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrInternalInvariant = errors.New("internal invariant violated")
)
