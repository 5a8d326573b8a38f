package domain_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/samsmithnz/CardGames-sub000/internal/domain"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func sortCards(cards []domain.Card) []domain.Card {
	out := append([]domain.Card(nil), cards...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Suit != out[j].Suit {
			return out[i].Suit < out[j].Suit
		}
		return out[i].Rank < out[j].Rank
	})
	return out
}

func (s *DeckTestSuite) TestNewDeckIsComplete() {
	deck := domain.NewDeck()
	s.Equal(52, deck.Count())

	perSuit := map[domain.Suit]int{}
	perRank := map[domain.Rank]int{}
	seen := map[domain.Card]bool{}
	for _, c := range deck.Cards() {
		s.False(seen[c], "duplicate %s", c)
		seen[c] = true
		perSuit[c.Suit]++
		perRank[c.Rank]++
	}
	for _, suit := range domain.Suits {
		s.Equal(13, perSuit[suit], suit.String())
	}
	for r := domain.Ace; r <= domain.King; r++ {
		s.Equal(4, perRank[r], r.String())
	}
}

func (s *DeckTestSuite) TestCanonicalOrder() {
	cards := domain.NewDeck().Cards()
	s.Equal(card(domain.Ace, domain.Heart), cards[0])
	s.Equal(card(domain.King, domain.Heart), cards[12])
	s.Equal(card(domain.Ace, domain.Diamond), cards[13])
	s.Equal(card(domain.King, domain.Spade), cards[51])
}

func (s *DeckTestSuite) TestNewDecks() {
	s.Equal(104, domain.NewDecks(2).Count())
	s.Equal(0, domain.NewDecks(-1).Count())
}

func (s *DeckTestSuite) TestShufflePreservesCards() {
	deck := domain.NewDeck()
	original := deck.Cards()

	deck.Shuffle(&counterRNG{})

	s.Equal(52, deck.Count())
	s.Equal(sortCards(original), sortCards(deck.Cards()))
	s.NotEqual(original, deck.Cards())
}

func (s *DeckTestSuite) TestShuffleSwapsFromTheEnd() {
	// All zeros: each index n swaps with index 0, rotating the deck.
	deck := domain.NewDeckFrom([]domain.Card{
		card(domain.Ace, domain.Club), card(domain.Two, domain.Club), card(domain.Three, domain.Club),
	})
	deck.Shuffle(&deterministicRNG{values: []int{0}})

	s.Equal([]domain.Card{
		card(domain.Two, domain.Club), card(domain.Three, domain.Club), card(domain.Ace, domain.Club),
	}, deck.Cards())
}

func (s *DeckTestSuite) TestDealAndAdd() {
	deck := domain.NewDeckFrom([]domain.Card{card(domain.Ace, domain.Club)})

	c, ok := deck.DealCard()
	s.True(ok)
	s.Equal(card(domain.Ace, domain.Club), c)

	_, ok = deck.DealCard()
	s.False(ok)

	deck.AddCard(card(domain.Five, domain.Heart))
	deck.AddCard(card(domain.Six, domain.Heart))
	c, _ = deck.DealCard()
	s.Equal(card(domain.Six, domain.Heart), c)
}

func (s *DeckTestSuite) TestCloneIsIndependent() {
	deck := domain.NewDeck()
	clone := deck.Clone()

	s.Equal(deck.Cards(), clone.Cards())
	_, _ = clone.DealCard()
	s.Equal(52, deck.Count())
	s.Equal(51, clone.Count())
}
