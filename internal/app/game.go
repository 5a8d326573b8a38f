package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/samsmithnz/CardGames-sub000/internal/domain"
	"github.com/samsmithnz/CardGames-sub000/internal/ports"
)

// GameView is the application-level output for one session.
type GameView struct {
	ID              string
	GameName        string
	Won             bool
	MaxSequenceMove int
	State           domain.Snapshot
}

// GameService drives rules engines on behalf of clients. Calls are
// serialised, so one service may be shared across goroutines.
type GameService struct {
	mu       sync.Mutex
	catalog  ports.CatalogStore
	sessions ports.SessionStore
	rng      domain.RNG
	logger   *slog.Logger
	newID    func() string
}

func NewGameService(catalog ports.CatalogStore, sessions ports.SessionStore, rng domain.RNG, logger *slog.Logger) *GameService {
	return &GameService{
		catalog:  catalog,
		sessions: sessions,
		rng:      rng,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// ListGames returns every variant the catalog offers.
func (s *GameService) ListGames(ctx context.Context) ([]domain.GameDefinition, error) {
	games, err := s.catalog.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// StartGame shuffles a fresh deck and deals a new session of the named game.
func (s *GameService) StartGame(ctx context.Context, gameName string) (GameView, error) {
	def, err := s.catalog.GetGame(ctx, gameName)
	if err != nil {
		return GameView{}, fmt.Errorf("get game: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := domain.NewEngine(def)
	deck := domain.NewDecks(def.Decks)
	deck.Shuffle(s.rng)
	if err := e.DealCards(deck); err != nil {
		return GameView{}, fmt.Errorf("deal: %w", err)
	}

	sess := &ports.Session{ID: s.newID(), Engine: e, FaceUp: initialFaceUp(e)}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return GameView{}, fmt.Errorf("save session: %w", err)
	}
	s.logger.InfoContext(ctx, "game started", "session_id", sess.ID, "game", def.GameName)
	return view(sess), nil
}

// Get returns the current state of a session.
func (s *GameService) Get(ctx context.Context, id string) (GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(ctx, id)
	if err != nil {
		return GameView{}, err
	}
	return view(sess), nil
}

// Draw turns cards from the stock onto the waste.
func (s *GameService) Draw(ctx context.Context, id string) (GameView, error) {
	return s.update(ctx, id, func(sess *ports.Session) error {
		if !sess.Engine.DrawFromStock() {
			return fmt.Errorf("%w: nothing to draw", ErrIllegalMove)
		}
		return nil
	})
}

// ResetStock turns the waste back into the stock once the stock is empty.
func (s *GameService) ResetStock(ctx context.Context, id string) (GameView, error) {
	return s.update(ctx, id, func(sess *ports.Session) error {
		e := sess.Engine
		if len(e.StockPile) != 0 || len(e.WastePile) == 0 {
			return fmt.Errorf("%w: stock can only be reset when empty", ErrIllegalMove)
		}
		e.ResetStock()
		return nil
	})
}

// Move relocates cards between piles.
func (s *GameService) Move(ctx context.Context, id string, m Move) (GameView, error) {
	v, err := s.update(ctx, id, func(sess *ports.Session) error {
		return applyMove(sess, m)
	})
	if err == nil && v.Won {
		s.logger.InfoContext(ctx, "game won", "session_id", id, "game", v.GameName)
	}
	return v, err
}

// Export snapshots a session, face-up flags included.
func (s *GameService) Export(ctx context.Context, id, label string) (domain.Snapshot, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snap := v.State
	snap.Label = label
	return snap, nil
}

// Import starts a new session from a snapshot, building the engine from the
// snapshot's own game definition.
func (s *GameService) Import(ctx context.Context, snap domain.Snapshot) (GameView, error) {
	def, err := s.catalog.GetGame(ctx, snap.GameName)
	if err != nil {
		return GameView{}, fmt.Errorf("get game: %w", err)
	}
	e := domain.NewEngine(def)
	if err := e.ImportState(snap); err != nil {
		return GameView{}, fmt.Errorf("import state: %w", err)
	}

	sess := &ports.Session{ID: s.newID(), Engine: e, FaceUp: restoreFaceUp(e, snap.TableauFaceUpStates)}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return GameView{}, fmt.Errorf("save session: %w", err)
	}
	s.logger.InfoContext(ctx, "game imported", "session_id", sess.ID, "game", def.GameName, "label", snap.Label)
	return view(sess), nil
}

// Abandon ends a session and forgets its state.
func (s *GameService) Abandon(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.session(ctx, id); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.logger.InfoContext(ctx, "game abandoned", "session_id", id)
	return nil
}

func (s *GameService) update(ctx context.Context, id string, fn func(*ports.Session) error) (GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(ctx, id)
	if err != nil {
		return GameView{}, err
	}
	if err := fn(sess); err != nil {
		return GameView{}, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return GameView{}, fmt.Errorf("save session: %w", err)
	}
	return view(sess), nil
}

func (s *GameService) session(ctx context.Context, id string) (*ports.Session, error) {
	sess, ok, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

func view(sess *ports.Session) GameView {
	e := sess.Engine
	state := e.ExportState("")
	state.TableauFaceUpStates = cloneFaceUp(sess.FaceUp)
	v := GameView{
		ID:       sess.ID,
		GameName: e.GameName(),
		Won:      e.IsGameWon(),
		State:    state,
	}
	// Zero means unlimited.
	if e.Config().HasFreeCells() {
		v.MaxSequenceMove = e.CalculateMaxSequenceMoveSize()
	}
	return v
}
