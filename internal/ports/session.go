package ports

import (
	"context"

	"github.com/samsmithnz/CardGames-sub000/internal/domain"
)

// Session is one game in progress: the engine plus the face-up flags the
// engine does not track.
type Session struct {
	ID     string
	Engine *domain.Engine
	FaceUp [][]bool
}

// SessionStore keeps sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, bool, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
