package poker

import (
	"fmt"
	"strings"
)

// Hand is the best five card holding of one category found in a card set.
// All fields are computed when the hand is built and never change.
type Hand struct {
	Category Category
	// Cards are the cards making the hand's core, highest first
	// (the pair of a pair, all five cards of a straight).
	Cards []Card
	// Kickers fill the hand out to five cards, highest first.
	Kickers []Card
	// Value is the decisive rank: the pair's rank, or the top card of a
	// straight or flush. A wheel straight has Value Five.
	Value Rank
	// Subvalue is the second pair of two pair or the pair of a full house,
	// NoRank otherwise.
	Subvalue Rank
}

// String returns a string representation of the hand
func (h Hand) String() string {
	var b strings.Builder
	b.WriteString(h.Category.String())
	b.WriteString(" [")
	b.WriteString(FormatCards(h.Cards))
	if len(h.Kickers) > 0 {
		b.WriteString(" | ")
		b.WriteString(FormatCards(h.Kickers))
	}
	b.WriteString("]")
	return b.String()
}

// Describe returns a short human description such as "Full House, Kings full of Fives"
func (h Hand) Describe() string {
	switch h.Category {
	case HighCard:
		return fmt.Sprintf("%s, %s high", h.Category, rankName(h.Value))
	case Pair:
		return fmt.Sprintf("%s, %s", h.Category, rankPlural(h.Value))
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", h.Category, rankPlural(h.Value), rankPlural(h.Subvalue))
	case ThreeOfAKind, FourOfAKind:
		return fmt.Sprintf("%s, %s", h.Category, rankPlural(h.Value))
	case FullHouse:
		return fmt.Sprintf("%s, %s full of %s", h.Category, rankPlural(h.Value), rankPlural(h.Subvalue))
	case Straight, Flush, StraightFlush:
		return fmt.Sprintf("%s, %s high", h.Category, rankName(h.Value))
	default:
		return h.Category.String()
	}
}

// Size returns the number of cards in the hand including kickers
func (h Hand) Size() int {
	return len(h.Cards) + len(h.Kickers)
}

func rankName(r Rank) string {
	switch r {
	case Ace:
		return "Ace"
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Jack:
		return "Jack"
	case Ten:
		return "Ten"
	case Nine:
		return "Nine"
	case Eight:
		return "Eight"
	case Seven:
		return "Seven"
	case Six:
		return "Six"
	case Five:
		return "Five"
	case Four:
		return "Four"
	case Three:
		return "Three"
	case Two:
		return "Two"
	default:
		return "?"
	}
}

func rankPlural(r Rank) string {
	if r == Six {
		return "Sixes"
	}
	return rankName(r) + "s"
}
