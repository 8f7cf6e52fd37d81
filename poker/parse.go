package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCardString is returned when a card token cannot be parsed.
var ErrInvalidCardString = errors.New("invalid card string")

// ParseCard parses a single two character card token. Both rank-first
// ("Ah") and suit-first ("HA") orders are accepted, case-insensitively.
// Ranks: A, K, Q, J, T, 9, 8, 7, 6, 5, 4, 3, 2
// Suits: h (hearts), d (diamonds), c (clubs), s (spades)
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be exactly 2 characters", ErrInvalidCardString, s)
	}

	if rank, ok := parseRank(s[0]); ok {
		suit, ok := parseSuit(s[1])
		if !ok {
			return Card{}, fmt.Errorf("%w: unknown suit '%c' in %q", ErrInvalidCardString, s[1], s)
		}
		return Card{Suit: suit, Rank: rank}, nil
	}

	if suit, ok := parseSuit(s[0]); ok {
		rank, ok := parseRank(s[1])
		if !ok {
			return Card{}, fmt.Errorf("%w: unknown rank '%c' in %q", ErrInvalidCardString, s[1], s)
		}
		return Card{Suit: suit, Rank: rank}, nil
	}

	return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardString, s)
}

// ParseCards parses each token into a card
func ParseCards(tokens ...string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// ParseCardString parses concatenated card notation such as "AsKsQsJsTs".
// Spaces and commas are ignored.
func ParseCardString(s string) ([]Card, error) {
	s = strings.NewReplacer(" ", "", ",", "").Replace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: length %d of %q is not even", ErrInvalidCardString, len(s), s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(tokens ...string) []Card {
	cards, err := ParseCards(tokens...)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %v: %v", tokens, err))
	}
	return cards
}

// FormatCards renders cards space separated, e.g. "As Kd"
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func parseRank(c byte) (Rank, bool) {
	switch c {
	case 'A', 'a':
		return Ace, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'J', 'j':
		return Jack, true
	case 'T', 't':
		return Ten, true
	case '9':
		return Nine, true
	case '8':
		return Eight, true
	case '7':
		return Seven, true
	case '6':
		return Six, true
	case '5':
		return Five, true
	case '4':
		return Four, true
	case '3':
		return Three, true
	case '2':
		return Two, true
	default:
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 's', 'S':
		return Spades, true
	case 'h', 'H':
		return Hearts, true
	case 'd', 'D':
		return Diamonds, true
	case 'c', 'C':
		return Clubs, true
	default:
		return 0, false
	}
}
