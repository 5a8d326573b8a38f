package app

import (
	"fmt"

	"github.com/samsmithnz/CardGames-sub000/internal/domain"
	"github.com/samsmithnz/CardGames-sub000/internal/ports"
)

// PileKind names a pile family.
type PileKind string

const (
	PileTableau    PileKind = "tableau"
	PileFoundation PileKind = "foundation"
	PileWaste      PileKind = "waste"
	PileFreeCell   PileKind = "freecell"
)

// AnyPile as a target index lets the service pick the foundation or free
// cell the card fits.
const AnyPile = -1

// PileRef identifies one pile.
type PileRef struct {
	Kind  PileKind `json:"kind"`
	Index int      `json:"index"`
}

// Move asks to relocate cards. Card selects the bottom card of a tableau run;
// when nil the source's top card moves.
type Move struct {
	From PileRef      `json:"from"`
	To   PileRef      `json:"to"`
	Card *domain.Card `json:"card,omitempty"`
}

// applyMove validates m against the session's engine and performs it. On
// error nothing has changed.
func applyMove(s *ports.Session, m Move) error {
	e := s.Engine
	cards, err := pickUp(s, m)
	if err != nil {
		return err
	}

	to := m.To
	switch to.Kind {
	case PileTableau:
		if m.From.Kind == PileTableau && m.From.Index == to.Index {
			return fmt.Errorf("%w: source and target are the same column", ErrIllegalMove)
		}
		if !e.CanPlaceCardOnTableau(cards[0], to.Index) {
			return fmt.Errorf("%w: %s cannot go on tableau %d", ErrIllegalMove, cards[0], to.Index)
		}
		if !e.CanMoveCardSequence(len(cards), to.Index) {
			return fmt.Errorf("%w: not enough free space to move %d cards", ErrIllegalMove, len(cards))
		}
	case PileFoundation:
		if len(cards) != 1 {
			return fmt.Errorf("%w: only one card at a time goes to a foundation", ErrIllegalMove)
		}
		if to.Index == AnyPile {
			to.Index = e.FindAvailableFoundationPile(cards[0])
		}
		if !e.CanPlaceCardOnFoundation(cards[0], to.Index) {
			return fmt.Errorf("%w: %s cannot go on a foundation", ErrIllegalMove, cards[0])
		}
	case PileFreeCell:
		if len(cards) != 1 {
			return fmt.Errorf("%w: a free cell holds one card", ErrIllegalMove)
		}
		if to.Index == AnyPile {
			to.Index = firstEmptyFreeCell(e)
		}
		if !e.CanPlaceCardInFreeCell(to.Index) {
			return fmt.Errorf("%w: free cell %d is not available", ErrIllegalMove, to.Index)
		}
	default:
		return fmt.Errorf("%w: cannot move onto %q", ErrUnknownPile, to.Kind)
	}

	putDown(s, m.From, to, cards)
	return nil
}

// pickUp returns the cards m would move without touching any pile.
func pickUp(s *ports.Session, m Move) ([]domain.Card, error) {
	e := s.Engine
	from := m.From
	switch from.Kind {
	case PileWaste:
		if len(e.WastePile) == 0 {
			return nil, fmt.Errorf("%w: waste is empty", ErrIllegalMove)
		}
		return []domain.Card{e.WastePile[len(e.WastePile)-1]}, nil
	case PileFreeCell:
		c, ok := e.GetCardFromFreeCell(from.Index)
		if !ok {
			return nil, fmt.Errorf("%w: free cell %d is empty", ErrIllegalMove, from.Index)
		}
		return []domain.Card{c}, nil
	case PileFoundation:
		if from.Index < 0 || from.Index >= len(e.FoundationPiles) || len(e.FoundationPiles[from.Index]) == 0 {
			return nil, fmt.Errorf("%w: foundation %d is empty", ErrIllegalMove, from.Index)
		}
		pile := e.FoundationPiles[from.Index]
		return []domain.Card{pile[len(pile)-1]}, nil
	case PileTableau:
		if from.Index < 0 || from.Index >= len(e.TableauColumns) || len(e.TableauColumns[from.Index]) == 0 {
			return nil, fmt.Errorf("%w: tableau %d is empty", ErrIllegalMove, from.Index)
		}
		column := e.TableauColumns[from.Index]
		bottom := column[len(column)-1]
		if m.Card != nil {
			bottom = *m.Card
		}
		run, ok := e.SequenceFrom(from.Index, bottom)
		if !ok {
			return nil, fmt.Errorf("%w: %s does not start a movable run", ErrIllegalMove, bottom)
		}
		flags := s.FaceUp[from.Index]
		if !allFaceUp(flags[len(flags)-len(run):]) {
			return nil, fmt.Errorf("%w: run includes face-down cards", ErrIllegalMove)
		}
		return run, nil
	default:
		return nil, fmt.Errorf("%w: cannot move from %q", ErrUnknownPile, from.Kind)
	}
}

// putDown removes cards from their source by value and adds them to the
// already validated target.
func putDown(s *ports.Session, from, to PileRef, cards []domain.Card) {
	e := s.Engine
	switch from.Kind {
	case PileWaste:
		domain.RemoveTop(&e.WastePile, cards[0])
	case PileFreeCell:
		e.RemoveCardFromFreeCell(from.Index)
	case PileFoundation:
		domain.RemoveTop(&e.FoundationPiles[from.Index], cards[0])
	case PileTableau:
		e.RemoveFromTableau(from.Index, cards)
		removeFaceUp(s.FaceUp, from.Index, len(cards))
	}

	switch to.Kind {
	case PileTableau:
		e.TableauColumns[to.Index] = append(e.TableauColumns[to.Index], cards...)
		addFaceUp(s.FaceUp, to.Index, len(cards))
	case PileFoundation:
		e.FoundationPiles[to.Index] = append(e.FoundationPiles[to.Index], cards[0])
	case PileFreeCell:
		e.PlaceCardInFreeCell(cards[0], to.Index)
	}
}

func firstEmptyFreeCell(e *domain.Engine) int {
	for i := range e.FreeCells {
		if e.CanPlaceCardInFreeCell(i) {
			return i
		}
	}
	return AnyPile
}
