package http

import (
	"github.com/samsmithnz/CardGames-sub000/internal/app"
	"github.com/samsmithnz/CardGames-sub000/internal/domain"
)

// GameResponse is the JSON shape returned for a session.
type GameResponse struct {
	ID              string          `json:"id"`
	GameName        string          `json:"game_name"`
	Won             bool            `json:"won"`
	MaxSequenceMove int             `json:"max_sequence_move"`
	State           domain.Snapshot `json:"state"`
}

type GameSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Tableau     int    `json:"tableau"`
	FreeCells   int    `json:"freecells"`
	DrawCount   int    `json:"draw_count"`
}

type StartGameRequest struct {
	Game string `json:"game"`
}

type MoveRequest struct {
	From app.PileRef  `json:"from"`
	To   app.PileRef  `json:"to"`
	Card *domain.Card `json:"card,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toResponse(v app.GameView) GameResponse {
	return GameResponse{
		ID:              v.ID,
		GameName:        v.GameName,
		Won:             v.Won,
		MaxSequenceMove: v.MaxSequenceMove,
		State:           v.State,
	}
}

func toSummaries(games []domain.GameDefinition) []GameSummary {
	out := make([]GameSummary, len(games))
	for i, g := range games {
		out[i] = GameSummary{
			Name:        g.GameName,
			Description: g.Metadata.Description,
			Tableau:     g.Piles.Tableau,
			FreeCells:   g.Piles.FreeCells,
			DrawCount:   g.DrawRules.DrawCount,
		}
	}
	return out
}
