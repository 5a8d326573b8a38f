package domain

import "errors"

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidDeck       = errors.New("deck does not match game definition")
	ErrMalformedCatalog  = errors.New("malformed game catalog")
	ErrInvalidDefinition = errors.New("invalid game definition")
	ErrMalformedSnapshot = errors.New("malformed game snapshot")
	ErrSnapshotMismatch  = errors.New("snapshot does not fit game layout")
)
