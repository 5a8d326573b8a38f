package domain

// IsValidSequence reports whether cards, bottom first, form a descending run
// of alternating colours. An empty run is not valid; a single card is.
func IsValidSequence(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	for i, c := range cards {
		if c.IsZero() {
			return false
		}
		if i > 0 {
			prev := cards[i-1]
			if c.Rank != prev.Rank-1 || !c.OppositeColor(prev) {
				return false
			}
		}
	}
	return true
}

// SequenceFrom finds card in tableau column col by value, searching from the
// top, and returns the cards from it up to the top of the column if they form
// a valid run. Face-up state is the caller's to check.
func (e *Engine) SequenceFrom(col int, card Card) ([]Card, bool) {
	if col < 0 || col >= len(e.TableauColumns) || card.IsZero() {
		return nil, false
	}
	column := e.TableauColumns[col]
	for i := len(column) - 1; i >= 0; i-- {
		if !column[i].Equal(card) {
			continue
		}
		run := column[i:]
		if !IsValidSequence(run) {
			return nil, false
		}
		return append([]Card(nil), run...), true
	}
	return nil, false
}

// RemoveFromTableau removes cards from the top of column col. Every card must
// match the column's top cards by value, in order; otherwise nothing changes.
func (e *Engine) RemoveFromTableau(col int, cards []Card) bool {
	if col < 0 || col >= len(e.TableauColumns) || len(cards) == 0 {
		return false
	}
	column := e.TableauColumns[col]
	start := len(column) - len(cards)
	if start < 0 {
		return false
	}
	for i, c := range cards {
		if !column[start+i].Equal(c) {
			return false
		}
	}
	e.TableauColumns[col] = column[:start]
	return true
}
