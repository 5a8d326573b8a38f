package ports

import (
	"context"

	"github.com/samsmithnz/CardGames-sub000/internal/domain"
)

// CatalogStore provides access to game definitions.
type CatalogStore interface {
	GetGame(ctx context.Context, name string) (domain.GameDefinition, error)
	ListGames(ctx context.Context) ([]domain.GameDefinition, error)
}
