package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(s string) []Card {
	c, err := ParseCardString(s)
	if err != nil {
		panic(err)
	}
	return c
}

func TestBestHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		category Category
		value    Rank
		subvalue Rank
		primary  string
		kickers  string
	}{
		{
			name:     "royal flush",
			cards:    "ThJhQhKhAh",
			category: RoyalFlush,
			value:    Ace,
			primary:  "AhKhQhJhTh",
		},
		{
			name:     "royal flush beside a lower straight flush",
			cards:    "9hThJhQhKhAh2c",
			category: RoyalFlush,
			value:    Ace,
			primary:  "AhKhQhJhTh",
		},
		{
			name:     "wheel straight flush",
			cards:    "Ah2h3h4h5h",
			category: StraightFlush,
			value:    Five,
			primary:  "5h4h3h2hAh",
		},
		{
			name:     "straight flush over quads",
			cards:    "9s8s7s6s5s9h9d",
			category: StraightFlush,
			value:    Nine,
			primary:  "9s8s7s6s5s",
		},
		{
			name:     "straight flush needs one suit",
			cards:    "9s8s7s6s5h4s3s",
			category: Flush,
			value:    Nine,
			primary:  "9s8s7s6s4s",
		},
		{
			name:     "four of a kind",
			cards:    "AsAhAdAcKs2d3c",
			category: FourOfAKind,
			value:    Ace,
			primary:  "AsAcAdAh",
			kickers:  "Ks",
		},
		{
			name:     "four of a kind beats a flush",
			cards:    "7h7d7c7s2s9sJs",
			category: FourOfAKind,
			value:    Seven,
			kickers:  "Js",
		},
		{
			name:     "full house",
			cards:    "JsJcJdQsQd5s2s",
			category: FullHouse,
			value:    Jack,
			subvalue: Queen,
		},
		{
			name:     "full house from two trips",
			cards:    "KsKhKd5s5h5c2d",
			category: FullHouse,
			value:    King,
			subvalue: Five,
		},
		{
			name:     "flush beats trips",
			cards:    "8h8d8c2h5h9hKh",
			category: Flush,
			value:    King,
			primary:  "Kh9h8h5h2h",
		},
		{
			name:     "flush takes top five of the suit",
			cards:    "Js5cTsQs5d5s2s",
			category: Flush,
			value:    Queen,
			primary:  "QsJsTs5s2s",
		},
		{
			name:     "straight with duplicate ranks",
			cards:    "9c8d7h6s5c9h2d",
			category: Straight,
			value:    Nine,
		},
		{
			name:     "highest straight wins",
			cards:    "4c5d6h7s8c9dTh",
			category: Straight,
			value:    Ten,
			primary:  "Th9d8c7s6h",
		},
		{
			name:     "wheel straight",
			cards:    "As2d3c4h5sKdQd",
			category: Straight,
			value:    Five,
			primary:  "5s4h3c2dAs",
		},
		{
			name:     "ace high straight",
			cards:    "AsKdQcJhTs2d3d",
			category: Straight,
			value:    Ace,
		},
		{
			name:     "no wrap around straight",
			cards:    "QsKdAc2h3s",
			category: HighCard,
			value:    Ace,
			primary:  "Ac",
			kickers:  "KdQs3s2h",
		},
		{
			name:     "three of a kind",
			cards:    "Js5cThQc5d5h",
			category: ThreeOfAKind,
			value:    Five,
			kickers:  "QcJs",
		},
		{
			name:     "two pair takes the two highest pairs",
			cards:    "JsJcThTc4d4h2s",
			category: TwoPair,
			value:    Jack,
			subvalue: Ten,
			kickers:  "4d",
		},
		{
			name:     "two pair with four cards",
			cards:    "JsJcThTc",
			category: TwoPair,
			value:    Jack,
			subvalue: Ten,
			kickers:  "",
		},
		{
			name:     "pair",
			cards:    "AsAc",
			category: Pair,
			value:    Ace,
			primary:  "AsAc",
		},
		{
			name:     "pair with kickers",
			cards:    "9d9c2h5sKdJc7h",
			category: Pair,
			value:    Nine,
			kickers:  "KdJc7h",
		},
		{
			name:     "single card",
			cards:    "As",
			category: HighCard,
			value:    Ace,
			primary:  "As",
		},
		{
			name:     "high card",
			cards:    "2d7cKs9hJd3s4c",
			category: HighCard,
			value:    King,
			primary:  "Ks",
			kickers:  "Jd9h7c4c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hand, ok := BestHand(cards(tt.cards))
			require.True(t, ok)
			assert.Equal(t, tt.category, hand.Category, "got %s", hand)
			assert.Equal(t, tt.value, hand.Value, "value of %s", hand)
			assert.Equal(t, tt.subvalue, hand.Subvalue, "subvalue of %s", hand)
			if tt.primary != "" {
				assert.Equal(t, cards(tt.primary), hand.Cards)
			}
			if tt.kickers != "" {
				assert.Equal(t, cards(tt.kickers), hand.Kickers)
			}
			assert.LessOrEqual(t, hand.Size(), 5)

			chained, ok := BestHandByChain(cards(tt.cards))
			require.True(t, ok)
			assert.Equal(t, hand, chained)
		})
	}
}

func TestBestHandEmpty(t *testing.T) {
	t.Parallel()
	_, ok := BestHand(nil)
	assert.False(t, ok)
	_, ok = BestHandByChain([]Card{})
	assert.False(t, ok)
}

func TestFullHouseSubvalue(t *testing.T) {
	t.Parallel()
	// 8h8d8c plus a pair from the residual set
	hand, ok := BestHand(cards("8h8d8c2h2d9hKh"))
	require.True(t, ok)
	assert.Equal(t, FullHouse, hand.Category)
	assert.Equal(t, Eight, hand.Value)
	assert.Equal(t, Two, hand.Subvalue)
	assert.Equal(t, cards("8c8d8h2d2h"), hand.Cards)
	assert.Empty(t, hand.Kickers)
}

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		present  []Category
		excluded []Category
	}{
		{
			name:     "royal flush contains everything below it that it implies",
			cards:    "ThJhQhKhAh",
			present:  []Category{RoyalFlush, StraightFlush, Flush, Straight, HighCard},
			excluded: []Category{FourOfAKind, FullHouse, ThreeOfAKind, TwoPair, Pair},
		},
		{
			name:     "wheel straight flush is not royal",
			cards:    "Ah2h3h4h5h",
			present:  []Category{StraightFlush, Flush, Straight},
			excluded: []Category{RoyalFlush},
		},
		{
			name:     "flush and straight in different suits",
			cards:    "2h4h6h8hTh9c7d",
			present:  []Category{Flush, Straight},
			excluded: []Category{StraightFlush},
		},
		{
			name:     "full house implies trips and two pair",
			cards:    "QsQdQh3c3d",
			present:  []Category{FullHouse, ThreeOfAKind, TwoPair, Pair},
			excluded: []Category{FourOfAKind, Flush, Straight},
		},
		{
			name:     "quads are not a full house",
			cards:    "9s9h9d9c2d",
			present:  []Category{FourOfAKind, ThreeOfAKind, Pair},
			excluded: []Category{FullHouse, TwoPair},
		},
		{
			name:     "four to a straight",
			cards:    "2c3d4h5s9c",
			present:  []Category{HighCard},
			excluded: []Category{Straight, Pair},
		},
		{
			name:     "empty has nothing",
			cards:    "",
			excluded: Categories[:],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, c := range tt.present {
				assert.True(t, Detect(c, cards(tt.cards)), "expected %s", c)
				_, ok := Extract(c, cards(tt.cards))
				assert.True(t, ok, "expected to extract %s", c)
			}
			for _, c := range tt.excluded {
				assert.False(t, Detect(c, cards(tt.cards)), "did not expect %s", c)
				_, ok := Extract(c, cards(tt.cards))
				assert.False(t, ok, "did not expect to extract %s", c)
			}
		})
	}
}

func TestExtractIndependently(t *testing.T) {
	t.Parallel()
	hand := cards("AsAdKsKd2c")

	pair, ok := Extract(Pair, hand)
	require.True(t, ok)
	assert.Equal(t, Ace, pair.Value)
	assert.Equal(t, cards("KsKd2c"), pair.Kickers)

	twoPair, ok := Extract(TwoPair, hand)
	require.True(t, ok)
	assert.Equal(t, Ace, twoPair.Value)
	assert.Equal(t, King, twoPair.Subvalue)
	assert.Equal(t, cards("2c"), twoPair.Kickers)

	high, ok := Extract(HighCard, hand)
	require.True(t, ok)
	assert.Equal(t, Ace, high.Value)
	assert.Len(t, high.Kickers, 4)

	_, ok = Extract(Category(42), hand)
	assert.False(t, ok)
}

func TestHandDescribe(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards string
		want  string
	}{
		{"KsKhKd5s5h", "Full House, Kings full of Fives"},
		{"Ah2d3c4s5h", "Straight, Five high"},
		{"6s6h2c", "One Pair, Sixes"},
		{"JsJhTcTd9s", "Two Pair, Jacks and Tens"},
		{"ThJhQhKhAh", "Royal Flush"},
		{"2d7c9s", "High Card, Nine high"},
	}
	for _, tt := range tests {
		hand, ok := BestHand(cards(tt.cards))
		require.True(t, ok)
		assert.Equal(t, tt.want, hand.Describe())
	}
}

func TestCategoryText(t *testing.T) {
	t.Parallel()
	for _, c := range Categories {
		text, err := c.MarshalText()
		require.NoError(t, err)
		var back Category
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, c, back)
	}
	_, err := Category(0).MarshalText()
	assert.Error(t, err)
	var c Category
	assert.Error(t, c.UnmarshalText([]byte("fiveOfAKind")))
}
