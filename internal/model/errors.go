package model

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidPortions    = errors.New("recipe portions must be positive")
	ErrPortionsOutOfRange = errors.New("portions out of range")
	ErrEmptyText          = errors.New("empty text")
)
