package domain_test

import "github.com/samsmithnz/CardGames-sub000/internal/domain"

// deterministicRNG returns values from a pre-set sequence.
type deterministicRNG struct {
	values []int
	idx    int
}

func (r *deterministicRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

// counterRNG cycles through increasing values so shuffles actually move cards.
type counterRNG struct{ n int }

func (r *counterRNG) Intn(n int) int {
	r.n = (r.n*7 + 3) % 1000003
	return r.n % n
}

func klondike() domain.GameDefinition {
	return domain.GameDefinition{
		GameName: "Klondike Solitaire",
		Decks:    1,
		Piles:    domain.Piles{Tableau: 7, Foundation: 4, Waste: 1},
		InitialLayout: domain.InitialLayout{
			Tableau: []int{1, 2, 3, 4, 5, 6, 7},
			FaceUp:  []bool{false, false, false, false, false, false, false},
		},
		MovementRules: domain.MovementRules{
			EmptyTableau:        domain.EmptyTableauKingsOnly,
			EmptyFoundation:     "aces only",
			TableauToTableau:    "descending, alternating colors",
			TableauToFoundation: "ascending, same suit",
		},
		DrawRules:    domain.DrawRules{DrawCount: 1, Redeals: domain.RedealsUnlimited},
		WinCondition: "all cards on foundations",
	}
}

func freeCell() domain.GameDefinition {
	return domain.GameDefinition{
		GameName: "FreeCell",
		Decks:    1,
		Piles:    domain.Piles{Tableau: 8, Foundation: 4, FreeCells: 4},
		InitialLayout: domain.InitialLayout{
			Tableau: []int{7, 7, 7, 7, 6, 6, 6, 6},
			FaceUp:  []bool{true, true, true, true, true, true, true, true},
		},
		MovementRules: domain.MovementRules{
			EmptyTableau:        domain.EmptyTableauAnyCard,
			EmptyFoundation:     "aces only",
			TableauToTableau:    "descending, alternating colors",
			TableauToFoundation: "ascending, same suit",
		},
		DrawRules:    domain.DrawRules{DrawCount: 0, Redeals: domain.RedealsNotApplicable},
		WinCondition: "all cards on foundations",
	}
}

func card(r domain.Rank, s domain.Suit) domain.Card { return domain.NewCard(r, s) }
