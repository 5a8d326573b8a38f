package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Suit represents a card suit.
type Suit int

const (
	Heart Suit = iota
	Diamond
	Club
	Spade
)

var suitNames = [...]string{"Heart", "Diamond", "Club", "Spade"}

// Suits lists every suit in canonical deck order.
var Suits = []Suit{Heart, Diamond, Club, Spade}

func (s Suit) String() string {
	if s < Heart || s > Spade {
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
	return suitNames[s]
}

// IsRed reports whether the suit is a red suit (hearts and diamonds).
func (s Suit) IsRed() bool { return s == Heart || s == Diamond }

func (s Suit) MarshalText() ([]byte, error) {
	if s < Heart || s > Spade {
		return nil, fmt.Errorf("invalid suit %d", int(s))
	}
	return []byte(suitNames[s]), nil
}

func (s *Suit) UnmarshalText(b []byte) error {
	for i, name := range suitNames {
		if strings.EqualFold(name, string(b)) {
			*s = Suit(i)
			return nil
		}
	}
	return fmt.Errorf("unknown suit %q", string(b))
}

// UnmarshalJSON accepts either the suit name or its ordinal.
func (s *Suit) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		if n < int(Heart) || n > int(Spade) {
			return fmt.Errorf("suit %d out of range", n)
		}
		*s = Suit(n)
		return nil
	}
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("suit: %w", err)
	}
	return s.UnmarshalText([]byte(name))
}

// Rank represents a card rank. Ace is low.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = [...]string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankShort = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if r < Ace || r > King {
		return "Rank(" + strconv.Itoa(int(r)) + ")"
	}
	return rankNames[r]
}

func (r Rank) MarshalText() ([]byte, error) {
	if r < Ace || r > King {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return []byte(rankNames[r]), nil
}

func (r *Rank) UnmarshalText(b []byte) error {
	s := string(b)
	for i := Ace; i <= King; i++ {
		if strings.EqualFold(rankNames[i], s) || strings.EqualFold(rankShort[i], s) {
			*r = i
			return nil
		}
	}
	return fmt.Errorf("unknown rank %q", s)
}

// UnmarshalJSON accepts either the rank name ("Queen", "Q") or its value (1-13).
func (r *Rank) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		if n < int(Ace) || n > int(King) {
			return fmt.Errorf("rank %d out of range", n)
		}
		*r = Rank(n)
		return nil
	}
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("rank: %w", err)
	}
	return r.UnmarshalText([]byte(name))
}

// Card is a playing card. Cards are compared by value; the zero Card means
// "no card".
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// UnmarshalJSON requires both rank and suit.
func (c *Card) UnmarshalJSON(b []byte) error {
	var raw struct {
		Rank *Rank `json:"rank"`
		Suit *Suit `json:"suit"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Rank == nil || raw.Suit == nil {
		return fmt.Errorf("card %s: rank and suit are required", b)
	}
	*c = Card{Rank: *raw.Rank, Suit: *raw.Suit}
	return nil
}

// NewCard returns the card of the given rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// IsZero reports whether c is the "no card" sentinel or otherwise not a real card.
func (c Card) IsZero() bool {
	return c.Rank < Ace || c.Rank > King || c.Suit < Heart || c.Suit > Spade
}

// Equal reports whether c and o have the same rank and suit.
func (c Card) Equal(o Card) bool {
	return c.Rank == o.Rank && c.Suit == o.Suit
}

// IsRed reports whether the card is a heart or a diamond.
func (c Card) IsRed() bool { return c.Suit.IsRed() }

// OppositeColor reports whether c and o are of different colours.
func (c Card) OppositeColor(o Card) bool { return c.IsRed() != o.IsRed() }

func (c Card) String() string {
	if c.IsZero() {
		return "no card"
	}
	return rankShort[c.Rank] + " of " + c.Suit.String() + "s"
}
