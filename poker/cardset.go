package poker

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrDuplicateCard is returned when the same card appears more than once
// in input that must describe distinct cards.
var ErrDuplicateCard = errors.New("duplicate card")

// ErrInvalidCard is returned for a Card value outside the 52 playing cards.
var ErrInvalidCard = errors.New("invalid card")

// CardSet represents a set of cards using a bitset for fast operations.
// Each card maps to one of 52 bits.
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards []Card) CardSet {
	var cs CardSet
	cs.AddAll(cards)
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.index()
}

// AddAll adds every card to the set
func (cs *CardSet) AddAll(cards []Card) {
	for _, card := range cards {
		cs.Add(card)
	}
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.index()) != 0
}

// Len returns the number of cards in the set
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// Without returns the cards not present in remove, preserving order.
// Cards are matched by identity (suit and rank).
func Without(cards []Card, remove ...Card) []Card {
	excluded := NewCardSet(remove)
	kept := make([]Card, 0, len(cards))
	for _, card := range cards {
		if !excluded.Contains(card) {
			kept = append(kept, card)
		}
	}
	return kept
}

// AssertUnique returns an error wrapping ErrDuplicateCard naming the first
// card that repeats, or ErrInvalidCard for a malformed card value.
func AssertUnique(cards []Card) error {
	var seen CardSet
	for _, card := range cards {
		if !card.Rank.Valid() || card.Suit > Spades {
			return fmt.Errorf("%w: rank %d suit %d", ErrInvalidCard, card.Rank, card.Suit)
		}
		if seen.Contains(card) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}
		seen.Add(card)
	}
	return nil
}
