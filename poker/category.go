package poker

import "fmt"

// Category is the class of a poker hand, ordered from weakest to strongest
type Category uint8

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from strongest to weakest.
var Categories = [...]Category{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	Pair,
	HighCard,
}

var categoryKeys = map[Category]string{
	HighCard:      "highCard",
	Pair:          "pair",
	TwoPair:       "twoPair",
	ThreeOfAKind:  "threeOfAKind",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "fullHouse",
	FourOfAKind:   "fourOfAKind",
	StraightFlush: "straightFlush",
	RoyalFlush:    "royalFlush",
}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Key returns the identifier used for the category in JSON output
func (c Category) Key() string {
	if key, ok := categoryKeys[c]; ok {
		return key
	}
	return "unknown"
}

// Valid reports whether c is one of the ten categories
func (c Category) Valid() bool {
	return c >= HighCard && c <= RoyalFlush
}

// MarshalText implements encoding.TextMarshaler so categories can key JSON maps
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown hand category %d", uint8(c))
	}
	return []byte(c.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	for category, key := range categoryKeys {
		if key == string(text) {
			*c = category
			return nil
		}
	}
	return fmt.Errorf("unknown hand category %q", text)
}
