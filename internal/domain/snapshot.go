package domain

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the serialisable state of one game.
type Snapshot struct {
	GameName        string   `json:"gameName"`
	Label           string   `json:"label"`
	StockPile       []Card   `json:"stockPile"`
	WastePile       []Card   `json:"wastePile"`
	FoundationPiles [][]Card `json:"foundationPiles"`
	TableauColumns  [][]Card `json:"tableauColumns"`
	FreeCells       []*Card  `json:"freeCells"`
	// TableauFaceUpStates is filled in by the caller before export.
	TableauFaceUpStates [][]bool `json:"tableauFaceUpStates"`
}

// ExportState captures the engine's piles under label.
func (e *Engine) ExportState(label string) Snapshot {
	return Snapshot{
		GameName:            e.config.GameName,
		Label:               label,
		StockPile:           clonePile(e.StockPile),
		WastePile:           clonePile(e.WastePile),
		FoundationPiles:     clonePiles(e.FoundationPiles),
		TableauColumns:      clonePiles(e.TableauColumns),
		FreeCells:           cloneCells(e.FreeCells),
		TableauFaceUpStates: [][]bool{},
	}
}

// ImportState replaces every pile with the snapshot's contents. The snapshot
// must have the engine's pile counts; the caller builds an engine for the
// snapshot's game before importing.
func (e *Engine) ImportState(s Snapshot) error {
	switch {
	case len(s.TableauColumns) != len(e.TableauColumns):
		return fmt.Errorf("%w: %d tableau columns, engine has %d", ErrSnapshotMismatch, len(s.TableauColumns), len(e.TableauColumns))
	case len(s.FoundationPiles) != len(e.FoundationPiles):
		return fmt.Errorf("%w: %d foundations, engine has %d", ErrSnapshotMismatch, len(s.FoundationPiles), len(e.FoundationPiles))
	case len(s.FreeCells) != len(e.FreeCells):
		return fmt.Errorf("%w: %d free cells, engine has %d", ErrSnapshotMismatch, len(s.FreeCells), len(e.FreeCells))
	}
	if err := s.checkCards(); err != nil {
		return err
	}
	e.StockPile = clonePile(s.StockPile)
	e.WastePile = clonePile(s.WastePile)
	e.FoundationPiles = clonePiles(s.FoundationPiles)
	e.TableauColumns = clonePiles(s.TableauColumns)
	e.FreeCells = cloneCells(s.FreeCells)
	return nil
}

// ToJSON encodes the snapshot, indented when pretty is set.
func (s Snapshot) ToJSON(pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}

// SnapshotFromJSON decodes a snapshot document.
func SnapshotFromJSON(raw []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	if s.GameName == "" {
		return Snapshot{}, fmt.Errorf("%w: missing gameName", ErrMalformedSnapshot)
	}
	if err := s.checkCards(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// checkCards rejects "no card" values in piles and occupied free cells.
func (s Snapshot) checkCards() error {
	check := func(where string, p []Card) error {
		for i, c := range p {
			if c.IsZero() {
				return fmt.Errorf("%w: %s card %d is not a card", ErrMalformedSnapshot, where, i)
			}
		}
		return nil
	}
	if err := check("stock", s.StockPile); err != nil {
		return err
	}
	if err := check("waste", s.WastePile); err != nil {
		return err
	}
	for i, p := range s.FoundationPiles {
		if err := check(fmt.Sprintf("foundation %d", i), p); err != nil {
			return err
		}
	}
	for i, p := range s.TableauColumns {
		if err := check(fmt.Sprintf("tableau %d", i), p); err != nil {
			return err
		}
	}
	for i, c := range s.FreeCells {
		if c != nil && c.IsZero() {
			return fmt.Errorf("%w: free cell %d holds no card", ErrMalformedSnapshot, i)
		}
	}
	return nil
}

func clonePile(p []Card) []Card {
	return append([]Card{}, p...)
}

func clonePiles(ps [][]Card) [][]Card {
	out := make([][]Card, len(ps))
	for i, p := range ps {
		out[i] = clonePile(p)
	}
	return out
}

func cloneCells(cells []*Card) []*Card {
	out := make([]*Card, len(cells))
	for i, c := range cells {
		if c != nil {
			v := *c
			out[i] = &v
		}
	}
	return out
}
