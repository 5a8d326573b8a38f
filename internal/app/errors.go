package app

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrIllegalMove     = errors.New("illegal move")
	ErrUnknownPile     = errors.New("unknown pile")
)
