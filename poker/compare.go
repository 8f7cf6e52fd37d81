package poker

import "fmt"

// Compare returns 1 if a beats b, -1 if b beats a and 0 if they have equal value.
// Hands are ordered by category, value, subvalue, then the primary cards
// and the kickers position by position.
func Compare(a, b Hand) int {
	if a.Category != b.Category {
		return sign(int(a.Category) - int(b.Category))
	}
	if a.Value != b.Value {
		return sign(int(a.Value) - int(b.Value))
	}
	if a.Subvalue != b.Subvalue {
		return sign(int(a.Subvalue) - int(b.Subvalue))
	}
	if c := compareCards(a.Cards, b.Cards); c != 0 {
		return c
	}
	return compareCards(a.Kickers, b.Kickers)
}

// IsBetterThan returns true if a beats b
func IsBetterThan(a, b Hand) bool {
	return Compare(a, b) > 0
}

// HasEqualValue returns true when neither hand beats the other. Equal hands
// may hold different suits.
func HasEqualValue(a, b Hand) bool {
	return !IsBetterThan(a, b) && !IsBetterThan(b, a)
}

// compareCards compares two rank-descending card lists position by position.
// A missing card ranks below any card.
func compareCards(a, b []Card) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		var ra, rb Rank
		if i < len(a) {
			ra = a[i].Rank
		}
		if i < len(b) {
			rb = b[i].Rank
		}
		if ra != rb {
			return sign(int(ra) - int(rb))
		}
	}
	return 0
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Explain compares two hands and returns the result with an explanation
func Explain(a, b Hand) (int, string) {
	result := Compare(a, b)
	if result == 0 {
		return result, "hands tie"
	}

	winner, loser := a, b
	if result < 0 {
		winner, loser = b, a
	}
	explanation := fmt.Sprintf("%s beats %s", winner, loser)

	if winner.Category != loser.Category {
		return result, explanation + fmt.Sprintf(" (%s beats %s)", winner.Category, loser.Category)
	}

	switch {
	case winner.Value != loser.Value:
		switch winner.Category {
		case Straight, Flush, StraightFlush, HighCard:
			explanation += fmt.Sprintf(" with higher top card (%s vs %s)", winner.Value, loser.Value)
		case TwoPair:
			explanation += fmt.Sprintf(" with higher top pair (%s vs %s)", winner.Value, loser.Value)
		case FullHouse:
			explanation += fmt.Sprintf(" with higher trips (%s vs %s)", winner.Value, loser.Value)
		default:
			explanation += fmt.Sprintf(" with higher %s (%s vs %s)", winner.Category, winner.Value, loser.Value)
		}
	case winner.Subvalue != loser.Subvalue:
		switch winner.Category {
		case TwoPair:
			explanation += fmt.Sprintf(" with higher bottom pair (%s vs %s)", winner.Subvalue, loser.Subvalue)
		default:
			explanation += fmt.Sprintf(" with higher pair (%s vs %s)", winner.Subvalue, loser.Subvalue)
		}
	default:
		w, l := firstDifference(winner, loser)
		explanation += fmt.Sprintf(" with higher kicker (%s vs %s)", w, l)
	}
	return result, explanation
}

// firstDifference returns the ranks at the first position where the card
// lists of two same-valued hands differ.
func firstDifference(a, b Hand) (Rank, Rank) {
	ac := append(append([]Card{}, a.Cards...), a.Kickers...)
	bc := append(append([]Card{}, b.Cards...), b.Kickers...)
	for i := 0; i < max(len(ac), len(bc)); i++ {
		var ra, rb Rank
		if i < len(ac) {
			ra = ac[i].Rank
		}
		if i < len(bc) {
			rb = bc[i].Rank
		}
		if ra != rb {
			return ra, rb
		}
	}
	return NoRank, NoRank
}
