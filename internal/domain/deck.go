package domain

// CardsPerDeck is the size of one standard deck.
const CardsPerDeck = 52

// Deck is an ordered pile of cards. The top of the deck is the last card.
type Deck struct {
	cards []Card
}

// NewDeck returns one standard 52-card deck ordered by suit, then by rank ascending.
func NewDeck() *Deck {
	return NewDecks(1)
}

// NewDecks returns n standard decks combined, each in canonical order.
func NewDecks(n int) *Deck {
	if n < 0 {
		n = 0
	}
	cards := make([]Card, 0, n*CardsPerDeck)
	for i := 0; i < n; i++ {
		for _, s := range Suits {
			for r := Ace; r <= King; r++ {
				cards = append(cards, Card{Rank: r, Suit: s})
			}
		}
	}
	return &Deck{cards: cards}
}

// NewDeckFrom returns a deck holding a copy of cards in the given order.
func NewDeckFrom(cards []Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Shuffle reorders the deck in place with a Fisher-Yates shuffle.
func (d *Deck) Shuffle(rng RNG) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealCard removes and returns the top card. ok is false when the deck is empty.
func (d *Deck) DealCard() (card Card, ok bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	last := len(d.cards) - 1
	card = d.cards[last]
	d.cards = d.cards[:last]
	return card, true
}

// AddCard puts card on top of the deck.
func (d *Deck) AddCard(card Card) {
	d.cards = append(d.cards, card)
}

// Clone returns an independent copy of the deck.
func (d *Deck) Clone() *Deck {
	return NewDeckFrom(d.cards)
}

// Count returns the number of cards left in the deck.
func (d *Deck) Count() int {
	return len(d.cards)
}

// Cards returns a copy of the deck's cards, bottom first.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
