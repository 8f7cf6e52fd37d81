package poker

// HoleStrength is a coarse preflop label for a two card hole
type HoleStrength string

const (
	HolePremium HoleStrength = "Premium"
	HoleStrong  HoleStrength = "Strong"
	HoleMedium  HoleStrength = "Medium"
	HoleWeak    HoleStrength = "Weak"
	HoleTrash   HoleStrength = "Trash"
	HoleUnknown HoleStrength = "Unknown"
)

// ClassifyHole labels a hole before any board is dealt.
// Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77-99, suited broadway),
// Weak (small pairs, suited connectors), Trash (everything else).
// Holes that are not exactly two valid cards are Unknown.
func ClassifyHole(hole []Card) HoleStrength {
	if len(hole) != 2 || !hole[0].Rank.Valid() || !hole[1].Rank.Valid() {
		return HoleUnknown
	}

	small, big := hole[0].Rank, hole[1].Rank
	if small > big {
		small, big = big, small
	}
	suited := hole[0].Suit == hole[1].Suit
	pair := small == big

	switch {
	case pair && small >= Jack, small == King && big == Ace:
		return HolePremium
	case pair && small == Ten, big == Ace && (small == Queen || small == Jack):
		return HoleStrong
	case pair && small >= Seven, suited && small >= Ten:
		return HoleMedium
	case pair, suited && big-small <= 2:
		return HoleWeak
	default:
		return HoleTrash
	}
}
