package domain

// CanPlaceCardOnTableau reports whether card may be dropped on tableau column col.
func (e *Engine) CanPlaceCardOnTableau(card Card, col int) bool {
	if col < 0 || col >= len(e.TableauColumns) {
		return false
	}
	t, ok := top(e.TableauColumns[col])
	if !ok {
		return e.CanPlaceOnPlayingArea(card, nil)
	}
	return e.CanPlaceOnPlayingArea(card, &t)
}

// CanPlaceCardOnFoundation reports whether card may be dropped on foundation idx.
func (e *Engine) CanPlaceCardOnFoundation(card Card, idx int) bool {
	if idx < 0 || idx >= len(e.FoundationPiles) {
		return false
	}
	t, ok := top(e.FoundationPiles[idx])
	if !ok {
		return e.CanPlaceOnFoundation(card, nil)
	}
	return e.CanPlaceOnFoundation(card, &t)
}

// CanPlaceOnPlayingArea applies the tableau rule against an explicit target
// card; a nil target stands for an empty column.
func (e *Engine) CanPlaceOnPlayingArea(card Card, target *Card) bool {
	if card.IsZero() {
		return false
	}
	if target == nil {
		return card.Rank == King || e.config.AllowsAnyCardOnEmptyTableau()
	}
	if target.IsZero() {
		return false
	}
	return card.Rank == target.Rank-1 && card.OppositeColor(*target)
}

// CanPlaceOnFoundation applies the foundation rule against an explicit
// target card; a nil target stands for an empty foundation.
func (e *Engine) CanPlaceOnFoundation(card Card, target *Card) bool {
	if card.IsZero() {
		return false
	}
	if target == nil {
		return card.Rank == Ace
	}
	if target.IsZero() {
		return false
	}
	return card.Suit == target.Suit && card.Rank == target.Rank+1
}

// FindAvailableFoundationPile returns the foundation card can go on now, or
// -1. An ace prefers the empty foundation whose index matches its suit and
// otherwise takes the first empty one.
func (e *Engine) FindAvailableFoundationPile(card Card) int {
	if card.IsZero() {
		return -1
	}
	if card.Rank == Ace {
		if slot := int(card.Suit); slot < len(e.FoundationPiles) && len(e.FoundationPiles[slot]) == 0 {
			return slot
		}
		for i, pile := range e.FoundationPiles {
			if len(pile) == 0 {
				return i
			}
		}
		return -1
	}
	for i := range e.FoundationPiles {
		if t, ok := top(e.FoundationPiles[i]); ok && e.CanPlaceOnFoundation(card, &t) {
			return i
		}
	}
	return -1
}

// CanPlaceCardInFreeCell reports whether free cell idx exists and is empty.
func (e *Engine) CanPlaceCardInFreeCell(idx int) bool {
	return idx >= 0 && idx < len(e.FreeCells) && e.FreeCells[idx] == nil
}

// PlaceCardInFreeCell stores card in free cell idx if the cell is free.
func (e *Engine) PlaceCardInFreeCell(card Card, idx int) bool {
	if card.IsZero() || !e.CanPlaceCardInFreeCell(idx) {
		return false
	}
	c := card
	e.FreeCells[idx] = &c
	return true
}

// GetCardFromFreeCell returns the card in free cell idx without removing it.
func (e *Engine) GetCardFromFreeCell(idx int) (Card, bool) {
	if idx < 0 || idx >= len(e.FreeCells) || e.FreeCells[idx] == nil {
		return Card{}, false
	}
	return *e.FreeCells[idx], true
}

// RemoveCardFromFreeCell empties free cell idx and returns what it held.
func (e *Engine) RemoveCardFromFreeCell(idx int) (Card, bool) {
	c, ok := e.GetCardFromFreeCell(idx)
	if ok {
		e.FreeCells[idx] = nil
	}
	return c, ok
}

func (e *Engine) EmptyFreeCellCount() int {
	n := 0
	for _, c := range e.FreeCells {
		if c == nil {
			n++
		}
	}
	return n
}

func (e *Engine) EmptyTableauColumnCount() int {
	n := 0
	for _, col := range e.TableauColumns {
		if len(col) == 0 {
			n++
		}
	}
	return n
}
