package poker

// Detect reports whether cards contain a hand of the given category.
func Detect(category Category, cards []Card) bool {
	return newStats(cards).has(category)
}

func (s *stats) has(category Category) bool {
	switch category {
	case RoyalFlush:
		return s.hasRoyalFlush()
	case StraightFlush:
		return s.hasStraightFlush()
	case FourOfAKind:
		return s.quads >= 1
	case FullHouse:
		return s.hasFullHouse()
	case Flush:
		return s.hasFlush()
	case Straight:
		return s.hasStraight()
	case ThreeOfAKind:
		return s.trips >= 1
	case TwoPair:
		return s.pairs >= 2
	case Pair:
		return s.pairs >= 1
	case HighCard:
		return len(s.byRank) > 0
	default:
		return false
	}
}

func (s *stats) hasFlush() bool {
	_, ok := s.flushSuit()
	return ok
}

// hasStraight checks both ace-high and ace-low runs; the low ace bit in
// rankMask covers the wheel.
func (s *stats) hasStraight() bool {
	return straightHigh(s.rankMask) != NoRank
}

func (s *stats) hasStraightFlush() bool {
	_, high := s.straightFlush()
	return high != NoRank
}

func (s *stats) hasRoyalFlush() bool {
	_, high := s.straightFlush()
	return high == Ace
}

// hasFullHouse needs trips plus a second rank held twice; the trip rank
// itself counts toward the two.
func (s *stats) hasFullHouse() bool {
	return s.trips >= 1 && s.pairs >= 2
}
