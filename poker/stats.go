package poker

import "math/bits"

// stats holds everything detection and extraction need to know about a
// card set. It is computed once per evaluation and shared by every
// category check so the cards are sorted and counted only once.
type stats struct {
	byRank    []Card    // all cards, highest rank first
	suits     [4][]Card // cards of each suit, highest rank first
	counts    [Ace + 1]uint8
	rankMask  uint16    // bit r set when rank r is present; bit 1 doubles as a low ace
	suitMasks [4]uint16 // rankMask restricted to each suit
	pairs     int       // ranks held at least twice
	trips     int       // ranks held at least three times
	quads     int       // ranks held four times
}

func newStats(cards []Card) *stats {
	s := &stats{byRank: make([]Card, len(cards))}
	copy(s.byRank, cards)
	sortDesc(s.byRank)

	var suitCounts [4]int
	for _, c := range s.byRank {
		suitCounts[c.Suit]++
		s.counts[c.Rank]++
		bit := uint16(1) << c.Rank
		s.rankMask |= bit
		s.suitMasks[c.Suit] |= bit
		if c.Rank == Ace {
			s.rankMask |= 1 << 1
			s.suitMasks[c.Suit] |= 1 << 1
		}
	}

	// Partition one backing array by suit; walking byRank keeps each group sorted.
	backing := make([]Card, 0, len(cards))
	offset := 0
	for suit, n := range suitCounts {
		s.suits[suit] = backing[offset:offset:offset+n]
		offset += n
	}
	for _, c := range s.byRank {
		s.suits[c.Suit] = append(s.suits[c.Suit], c)
	}

	for _, n := range s.counts {
		if n >= 2 {
			s.pairs++
		}
		if n >= 3 {
			s.trips++
		}
		if n >= 4 {
			s.quads++
		}
	}
	return s
}

// straightHigh returns the top rank of the highest five rank run in mask,
// or NoRank. The wheel (A-2-3-4-5) reports Five.
func straightHigh(mask uint16) Rank {
	if bits.OnesCount16(mask) < 5 {
		return NoRank
	}
	for high := Ace; high >= Five; high-- {
		run := uint16(0x1F) << (high - 4)
		if mask&run == run {
			return high
		}
	}
	return NoRank
}

// flushSuit returns the suit with at least five cards whose top five are
// strongest. Seven cards can only ever hold one such suit.
func (s *stats) flushSuit() (Suit, bool) {
	best, found := Suit(0), false
	for _, suit := range Suits {
		cards := s.suits[suit]
		if len(cards) < 5 {
			continue
		}
		if !found || compareCards(cards[:5], s.suits[best][:5]) > 0 {
			best, found = suit, true
		}
	}
	return best, found
}

// straightFlush returns the suit and top rank of the best straight flush.
func (s *stats) straightFlush() (Suit, Rank) {
	bestSuit, bestHigh := Suit(0), NoRank
	for _, suit := range Suits {
		if len(s.suits[suit]) < 5 {
			continue
		}
		if high := straightHigh(s.suitMasks[suit]); high > bestHigh {
			bestSuit, bestHigh = suit, high
		}
	}
	return bestSuit, bestHigh
}

// highestRepeated returns the highest rank held at least n times once
// removed cards of rank removedRank have been taken out of the set.
func (s *stats) highestRepeated(n uint8, removedRank Rank, removed uint8) Rank {
	for r := Ace; r >= Two; r-- {
		count := s.counts[r]
		if r == removedRank {
			if count < removed {
				continue
			}
			count -= removed
		}
		if count >= n {
			return r
		}
	}
	return NoRank
}

// ofRank returns up to n cards of rank r that are not in used, highest suit order first.
func (s *stats) ofRank(r Rank, n int, used CardSet) []Card {
	out := make([]Card, 0, n)
	for _, c := range s.byRank {
		if len(out) == n {
			break
		}
		if c.Rank == r && !used.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// kickers returns the highest cards not in used, enough to fill five cards.
func (s *stats) kickers(used []Card) []Card {
	need := 5 - len(used)
	if need <= 0 {
		return nil
	}
	excluded := NewCardSet(used)
	out := make([]Card, 0, need)
	for _, c := range s.byRank {
		if len(out) == need {
			break
		}
		if !excluded.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
