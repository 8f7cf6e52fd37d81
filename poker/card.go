package poker

import (
	"fmt"
	"sort"
)

// Suit represents a card suit
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in deck order.
var Suits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the lowercase suit letter used in card notation
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Symbol returns the unicode symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are high (14); the wheel straight
// treats them as 1 internally.
type Rank uint8

// NoRank is the zero Rank, used where a hand has no secondary value.
const NoRank Rank = 0

const (
	Two Rank = iota + 2
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
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Valid reports whether r is one of the thirteen playable ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card represents a playing card. Two cards are the same card only if
// both suit and rank match.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the two character notation of a card (e.g., "As")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the card with a unicode suit symbol (e.g., "A♠")
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Less orders cards by rank, breaking ties by suit so sorts are deterministic
func (c Card) Less(other Card) bool {
	if c.Rank != other.Rank {
		return c.Rank < other.Rank
	}
	return c.Suit < other.Suit
}

// index maps a card to 0-51, suit-major.
func (c Card) index() int {
	return int(c.Suit)*13 + int(c.Rank-Two)
}

// SortByRankDesc returns a copy of cards ordered from highest to lowest rank.
func SortByRankDesc(cards []Card) []Card {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sortDesc(sorted)
	return sorted
}

// sortDesc sorts in place; hands are at most a handful of cards so an
// insertion sort beats sort.Slice here.
func sortDesc(cards []Card) {
	if len(cards) > 16 {
		sort.Slice(cards, func(i, j int) bool { return cards[j].Less(cards[i]) })
		return
	}
	for i := 1; i < len(cards); i++ {
		c := cards[i]
		j := i - 1
		for j >= 0 && cards[j].Less(c) {
			cards[j+1] = cards[j]
			j--
		}
		cards[j+1] = c
	}
}

// GroupBySuit returns the cards of each suit, each group ordered by rank descending.
func GroupBySuit(cards []Card) map[Suit][]Card {
	groups := make(map[Suit][]Card, 4)
	for _, c := range SortByRankDesc(cards) {
		groups[c.Suit] = append(groups[c.Suit], c)
	}
	return groups
}

// MarshalText encodes the card in two character notation
func (c Card) MarshalText() ([]byte, error) {
	if !c.Rank.Valid() || c.Suit > Spades {
		return nil, fmt.Errorf("%w: rank %d suit %d", ErrInvalidCard, c.Rank, c.Suit)
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card token accepted by ParseCard
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = card
	return nil
}
