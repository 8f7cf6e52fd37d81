package poker

import rand "math/rand/v2"

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// NewDeck returns the 52 cards of a standard deck in suit-major order
func NewDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle returns a uniformly random permutation of cards using Fisher-Yates.
// The input slice is not modified.
func Shuffle(cards []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// RemainingDeck returns the standard deck minus every known card, in deck order.
func RemainingDeck(known ...[]Card) []Card {
	var used CardSet
	for _, cards := range known {
		used.AddAll(cards)
	}
	remaining := make([]Card, 0, DeckSize-used.Len())
	for _, card := range NewDeck() {
		if !used.Contains(card) {
			remaining = append(remaining, card)
		}
	}
	return remaining
}
