package poker

import (
	"encoding/json"
	"testing"

	"github.com/lox/pokerodds/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "As", NewCard(Ace, Spades).String())
	assert.Equal(t, "2c", NewCard(Two, Clubs).String())
	assert.Equal(t, "Th", NewCard(Ten, Hearts).String())
	assert.Equal(t, "K♦", NewCard(King, Diamonds).Pretty())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "rank first", input: "Ah", want: NewCard(Ace, Hearts)},
		{name: "suit first", input: "HA", want: NewCard(Ace, Hearts)},
		{name: "lowercase suit first", input: "dt", want: NewCard(Ten, Diamonds)},
		{name: "case insensitive", input: "kS", want: NewCard(King, Spades)},
		{name: "two of clubs", input: "2c", want: NewCard(Two, Clubs)},
		{name: "surrounding space", input: " 9d ", want: NewCard(Nine, Diamonds)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "suit first invalid rank", input: "S1", wantErr: true},
		{name: "too long", input: "10h", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCardString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("Ah", "SK", "2c")
	require.NoError(t, err)
	assert.Equal(t, []Card{NewCard(Ace, Hearts), NewCard(King, Spades), NewCard(Two, Clubs)}, cards)

	_, err = ParseCards("Ah", "zz")
	require.ErrorIs(t, err, ErrInvalidCardString)
	assert.Contains(t, err.Error(), "card 2")

	assert.Panics(t, func() { MustParseCards("nope") })
}

func TestParseCardString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    []Card
		wantErr bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			want:  MustParseCards("As", "Ks", "Qs", "Js", "Ts"),
		},
		{
			name:  "spaces and commas",
			input: "Ah Kd, 7c",
			want:  MustParseCards("Ah", "Kd", "7c"),
		},
		{name: "empty", input: "", want: []Card{}},
		{name: "odd length", input: "AsK", wantErr: true},
		{name: "bad card", input: "AsZz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCardString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCardString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDeck(t *testing.T) {
	t.Parallel()
	deck := NewDeck()
	require.Len(t, deck, DeckSize)
	require.NoError(t, AssertUnique(deck))
	assert.Equal(t, DeckSize, NewCardSet(deck).Len())
}

func TestShuffle(t *testing.T) {
	t.Parallel()
	deck := NewDeck()
	original := append([]Card(nil), deck...)

	shuffled := Shuffle(deck, randutil.New(1))
	assert.Equal(t, original, deck, "input must not be modified")
	assert.ElementsMatch(t, deck, shuffled)
	assert.NotEqual(t, deck, shuffled)

	again := Shuffle(deck, randutil.New(1))
	assert.Equal(t, shuffled, again, "same seed must give same permutation")
}

func TestShuffleIsUniform(t *testing.T) {
	t.Parallel()
	items := MustParseCards("2c", "3c", "4c")
	rng := randutil.New(99)
	firsts := make(map[Card]int)
	const trials = 30000
	for i := 0; i < trials; i++ {
		firsts[Shuffle(items, rng)[0]]++
	}
	for _, card := range items {
		assert.InDelta(t, trials/3, firsts[card], trials*0.03, "card %s", card)
	}
}

func TestRemainingDeck(t *testing.T) {
	t.Parallel()
	hole := MustParseCards("Ah", "As")
	board := MustParseCards("Kd", "Qd", "Jd")
	remaining := RemainingDeck(hole, board)
	require.Len(t, remaining, 47)
	set := NewCardSet(remaining)
	for _, c := range append(hole, board...) {
		assert.False(t, set.Contains(c), "%s should have been removed", c)
	}
}

func TestWithout(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("Ah", "Kd", "Ah", "2c")
	assert.Equal(t, MustParseCards("Kd", "2c"), Without(cards, NewCard(Ace, Hearts)))
	assert.Equal(t, cards, Without(cards))
	assert.Empty(t, Without(nil, NewCard(Two, Clubs)))
}

func TestAssertUnique(t *testing.T) {
	t.Parallel()
	require.NoError(t, AssertUnique(MustParseCards("Ah", "As", "Kd")))
	require.NoError(t, AssertUnique(nil))

	err := AssertUnique(MustParseCards("Ah", "As", "Ah", "Kd", "Qd"))
	require.ErrorIs(t, err, ErrDuplicateCard)
	assert.Contains(t, err.Error(), "Ah")

	err = AssertUnique([]Card{{Rank: 1, Suit: Hearts}})
	require.ErrorIs(t, err, ErrInvalidCard)
}

func TestSortAndGroup(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("2h", "Ah", "9c", "Kh", "9s")
	sorted := SortByRankDesc(cards)
	assert.Equal(t, MustParseCards("Ah", "Kh", "9s", "9c", "2h"), sorted)
	assert.Equal(t, MustParseCards("2h", "Ah", "9c", "Kh", "9s"), cards, "input must not be modified")

	groups := GroupBySuit(cards)
	assert.Equal(t, MustParseCards("Ah", "Kh", "2h"), groups[Hearts])
	assert.Equal(t, MustParseCards("9c"), groups[Clubs])
	assert.Len(t, groups[Diamonds], 0)
}

func TestCardJSON(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(MustParseCards("As", "Td"))
	require.NoError(t, err)
	assert.JSONEq(t, `["As","Td"]`, string(data))

	var back []Card
	require.NoError(t, json.Unmarshal([]byte(`["as","DT"]`), &back))
	assert.Equal(t, MustParseCards("As", "Td"), back)

	require.ErrorIs(t, json.Unmarshal([]byte(`["Zz"]`), &back), ErrInvalidCardString)
	_, err = json.Marshal(Card{})
	require.Error(t, err)
}
