package engine

import "errors"

var (
	ErrInvalidSetup = errors.New("invalid setup")
	ErrUnknownName  = errors.New("unknown name")
)
