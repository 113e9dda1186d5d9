package core

import "errors"

var (
	ErrNotAvailable     = errors.New("not available")
	ErrNotFound         = errors.New("not found")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidCursor    = errors.New("invalid cursor")
)
