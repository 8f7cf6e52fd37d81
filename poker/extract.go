package poker

// Extract builds the best hand of the given category from cards. It returns
// false when the cards do not contain that category.
func Extract(category Category, cards []Card) (Hand, bool) {
	s := newStats(cards)
	if !s.has(category) {
		return Hand{}, false
	}
	return s.build(category), true
}

// build constructs a hand of a category already known to be present.
func (s *stats) build(category Category) Hand {
	switch category {
	case RoyalFlush:
		h := s.buildStraightFlush()
		h.Category = RoyalFlush
		return h
	case StraightFlush:
		return s.buildStraightFlush()
	case FourOfAKind:
		return s.buildOfAKind(FourOfAKind, 4)
	case FullHouse:
		return s.buildFullHouse()
	case Flush:
		return s.buildFlush()
	case Straight:
		return s.buildStraight()
	case ThreeOfAKind:
		return s.buildOfAKind(ThreeOfAKind, 3)
	case TwoPair:
		return s.buildTwoPair()
	case Pair:
		return s.buildOfAKind(Pair, 2)
	default:
		return s.buildHighCard()
	}
}

func (s *stats) buildStraightFlush() Hand {
	suit, high := s.straightFlush()
	return Hand{
		Category: StraightFlush,
		Cards:    straightCards(s.suits[suit], high),
		Value:    high,
	}
}

func (s *stats) buildStraight() Hand {
	high := straightHigh(s.rankMask)
	return Hand{
		Category: Straight,
		Cards:    straightCards(s.byRank, high),
		Value:    high,
	}
}

func (s *stats) buildFlush() Hand {
	suit, _ := s.flushSuit()
	cards := make([]Card, 5)
	copy(cards, s.suits[suit][:5])
	return Hand{
		Category: Flush,
		Cards:    cards,
		Value:    cards[0].Rank,
	}
}

// buildOfAKind takes n cards of the highest rank held at least n times.
func (s *stats) buildOfAKind(category Category, n uint8) Hand {
	rank := s.highestRepeated(n, NoRank, 0)
	cards := s.ofRank(rank, int(n), 0)
	return Hand{
		Category: category,
		Cards:    cards,
		Kickers:  s.kickers(cards),
		Value:    rank,
	}
}

func (s *stats) buildTwoPair() Hand {
	first := s.highestRepeated(2, NoRank, 0)
	firstCards := s.ofRank(first, 2, 0)
	second := s.highestRepeated(2, first, 2)
	secondCards := s.ofRank(second, 2, NewCardSet(firstCards))

	cards := append(firstCards, secondCards...)
	return Hand{
		Category: TwoPair,
		Cards:    cards,
		Kickers:  s.kickers(cards),
		Value:    first,
		Subvalue: second,
	}
}

func (s *stats) buildFullHouse() Hand {
	trips := s.highestRepeated(3, NoRank, 0)
	tripCards := s.ofRank(trips, 3, 0)
	pair := s.highestRepeated(2, trips, 3)
	pairCards := s.ofRank(pair, 2, NewCardSet(tripCards))

	return Hand{
		Category: FullHouse,
		Cards:    append(tripCards, pairCards...),
		Value:    trips,
		Subvalue: pair,
	}
}

func (s *stats) buildHighCard() Hand {
	cards := []Card{s.byRank[0]}
	return Hand{
		Category: HighCard,
		Cards:    cards,
		Kickers:  s.kickers(cards),
		Value:    cards[0].Rank,
	}
}

// straightCards picks one card per rank from high down to high-4 out of
// cards sorted by rank descending. Rank 1 of the wheel is played by an ace.
func straightCards(sorted []Card, high Rank) []Card {
	out := make([]Card, 0, 5)
	for want := high; len(out) < 5; want-- {
		target := want
		if want == 1 {
			target = Ace
		}
		for _, c := range sorted {
			if c.Rank == target {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
