package domain

import "fmt"

// Engine holds the live piles of one game and the rules of its variant.
//
// The pile slices are exported for collaborators to render and to perform
// tableau and foundation moves themselves; the top of every pile is its last
// element. An Engine is not safe for concurrent use.
type Engine struct {
	TableauColumns  [][]Card
	FoundationPiles [][]Card
	StockPile       []Card
	WastePile       []Card
	// FreeCells has one slot per free cell; nil marks an empty cell.
	FreeCells []*Card

	config GameDefinition
}

// NewEngine returns an engine with empty piles shaped by def.
func NewEngine(def GameDefinition) *Engine {
	e := &Engine{config: def}
	e.clear()
	return e
}

// NewEngineByName builds an engine for the named game in cat. Unknown names
// are an error; there is no fallback variant.
func NewEngineByName(cat *Catalog, name string) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("%w: %q: no catalog", ErrGameNotFound, name)
	}
	def, ok := cat.FindGame(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGameNotFound, name)
	}
	return NewEngine(def), nil
}

// Config returns the definition the engine was built from.
func (e *Engine) Config() GameDefinition {
	return e.config
}

// GameName returns the variant's name.
func (e *Engine) GameName() string {
	return e.config.GameName
}

func (e *Engine) clear() {
	e.TableauColumns = make([][]Card, e.config.Piles.Tableau)
	e.FoundationPiles = make([][]Card, e.config.Piles.Foundation)
	e.StockPile = nil
	e.WastePile = nil
	e.FreeCells = make([]*Card, e.config.Piles.FreeCells)
}

// DealCards clears every pile and deals deck according to the initial
// layout: column i receives the next initialLayout.tableau[i] cards and the
// rest become the stock, with the deck's top card on top of the stock. The
// deck is drained. An invalid definition, a nil deck or one whose size
// differs from the definition's card count is rejected before any pile is
// touched.
func (e *Engine) DealCards(deck *Deck) error {
	if err := e.config.Validate(); err != nil {
		return err
	}
	if deck == nil {
		return fmt.Errorf("%w: nil deck", ErrInvalidDeck)
	}
	if deck.Count() != e.config.TotalCards() {
		return fmt.Errorf("%w: %s needs %d cards, got %d",
			ErrInvalidDeck, e.config.GameName, e.config.TotalCards(), deck.Count())
	}

	e.clear()
	for col, n := range e.config.InitialLayout.Tableau {
		column := make([]Card, 0, n)
		for i := 0; i < n; i++ {
			c, _ := deck.DealCard()
			column = append(column, c)
		}
		e.TableauColumns[col] = column
	}
	e.StockPile = deck.Cards()
	deck.cards = deck.cards[:0]
	return nil
}

// DrawFromStock moves up to drawCount cards from the stock to the waste,
// one at a time. It reports false, changing nothing, when the stock is
// empty or the variant has no stock.
func (e *Engine) DrawFromStock() bool {
	if len(e.StockPile) == 0 || !e.config.HasStock() {
		return false
	}
	for i := 0; i < e.config.DrawRules.DrawCount && len(e.StockPile) > 0; i++ {
		last := len(e.StockPile) - 1
		e.WastePile = append(e.WastePile, e.StockPile[last])
		e.StockPile = e.StockPile[:last]
	}
	return true
}

// ResetStock turns the waste back over onto an empty stock so the first
// card drawn is again the first card available.
func (e *Engine) ResetStock() {
	if len(e.StockPile) != 0 || len(e.WastePile) == 0 {
		return
	}
	stock := make([]Card, 0, len(e.WastePile))
	for i := len(e.WastePile) - 1; i >= 0; i-- {
		stock = append(stock, e.WastePile[i])
	}
	e.StockPile = stock
	e.WastePile = nil
}

// IsGameWon reports whether every foundation holds a complete suit.
func (e *Engine) IsGameWon() bool {
	if len(e.FoundationPiles) == 0 {
		return false
	}
	for _, pile := range e.FoundationPiles {
		if len(pile) != int(King) {
			return false
		}
	}
	return true
}

func top(pile []Card) (Card, bool) {
	if len(pile) == 0 {
		return Card{}, false
	}
	return pile[len(pile)-1], true
}

// RemoveTop pops the top card of pile if it equals card by value.
func RemoveTop(pile *[]Card, card Card) bool {
	t, ok := top(*pile)
	if !ok || !t.Equal(card) {
		return false
	}
	*pile = (*pile)[:len(*pile)-1]
	return true
}
