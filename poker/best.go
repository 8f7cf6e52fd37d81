package poker

// BestHand returns the strongest hand that can be made from cards. It
// returns false only when cards is empty.
//
// Categories are decided by a short-circuiting decision tree over one
// shared stats value: without a pair there can be no quads or full house,
// without a flush there can be no straight flush, and so on. BestHandByChain
// is the reference it must agree with.
func BestHand(cards []Card) (Hand, bool) {
	if len(cards) == 0 {
		return Hand{}, false
	}
	s := newStats(cards)
	return s.build(s.bestCategory()), true
}

func (s *stats) bestCategory() Category {
	if s.hasFlush() {
		if _, high := s.straightFlush(); high != NoRank {
			if high == Ace {
				return RoyalFlush
			}
			return StraightFlush
		}
		if s.pairs == 0 {
			return Flush
		}
		return s.pairedOver(Flush)
	}

	if s.hasStraight() {
		if s.pairs == 0 {
			return Straight
		}
		return s.pairedOver(Straight)
	}

	if s.pairs == 0 {
		return HighCard
	}
	if s.trips == 0 {
		if s.pairs >= 2 {
			return TwoPair
		}
		return Pair
	}
	return s.pairedOver(ThreeOfAKind)
}

// pairedOver returns quads or a full house when present, otherwise fallback.
func (s *stats) pairedOver(fallback Category) Category {
	if s.quads >= 1 {
		return FourOfAKind
	}
	if s.hasFullHouse() {
		return FullHouse
	}
	return fallback
}

// BestHandByChain tries every extractor from the strongest category down
// and returns the first hand found. It does redundant work and exists as
// the reference BestHand is checked against.
func BestHandByChain(cards []Card) (Hand, bool) {
	for _, category := range Categories {
		if hand, ok := Extract(category, cards); ok {
			return hand, true
		}
	}
	return Hand{}, false
}
