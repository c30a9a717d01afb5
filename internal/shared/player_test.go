package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerWith(hand ...string) *Player {
	p := NewPlayer(0)
	p.Hand = MustParseCards(hand...)
	return p
}

func card(s string) Card {
	return MustParseCards(s)[0]
}

func TestPlayCardScopaClearsBoard(t *testing.T) {
	p := playerWith("5H", "KD", "QS")
	b := boardOf("2C", "3S")

	take := p.PlayCard(card("5H"), b)

	assert.Equal(t, NewCardSet(MustParseCards("2C", "3S", "5H")...), take.Cards)
	assert.Equal(t, 5, take.Value)
	assert.True(t, b.IsEmpty())
	assert.Equal(t, MustParseCards("2C", "3S", "5H"), p.WonCards)
	assert.Equal(t, 1, p.ScopaSum)
	assert.Equal(t, MustParseCards("KD", "QS"), p.Hand)
}

func TestPlayCardAceSweepsAceFreeBoard(t *testing.T) {
	p := playerWith("AD", "KS", "QH")
	b := boardOf("2C", "3S", "KC")

	take := p.PlayCard(card("AD"), b)

	assert.Equal(t, 4, take.Len())
	assert.Equal(t, 1, take.Value)
	assert.True(t, b.IsEmpty())
	assert.Equal(t, MustParseCards("2C", "3S", "KC", "AD"), p.WonCards)
	assert.Equal(t, 1, p.ScopaSum)
}

func TestPlayCardAceWithAceOnBoardTakesAce(t *testing.T) {
	p := playerWith("AD", "KS", "QH")
	b := boardOf("AS", "4C")

	take := p.PlayCard(card("AD"), b)

	assert.Equal(t, NewCardSet(MustParseCards("AS", "AD")...), take.Cards)
	assert.Equal(t, MustParseCards("4C"), b.Cards)
	assert.Equal(t, 0, p.ScopaSum)
}

func TestPlayCardAceOnEmptyBoardStays(t *testing.T) {
	p := playerWith("AD", "KS", "QH")
	b := NewBoard()

	take := p.PlayCard(card("AD"), b)

	assert.True(t, take.IsEmpty())
	assert.Equal(t, MustParseCards("AD"), b.Cards)
	assert.Empty(t, p.WonCards)
	assert.Equal(t, 0, p.ScopaSum)
}

func TestPlayCardWithoutCaptureGoesToBoard(t *testing.T) {
	p := playerWith("2H", "KS", "QH")
	b := boardOf("KC")

	take := p.PlayCard(card("2H"), b)

	assert.True(t, take.IsEmpty())
	assert.Equal(t, MustParseCards("KC", "2H"), b.Cards)
	assert.Empty(t, p.WonCards)
	assert.Equal(t, MustParseCards("KS", "QH"), p.Hand)
}

func TestPlayCardReachFifteen(t *testing.T) {
	p := playerWith("7H", "KS", "QH")
	b := boardOf("JS", "4C")

	take := p.PlayCard(card("7H"), b)

	// 7 + J(8) makes 15.
	assert.Equal(t, NewCardSet(MustParseCards("JS", "7H")...), take.Cards)
	assert.Equal(t, MustParseCards("4C"), b.Cards)
	assert.Equal(t, 0, p.ScopaSum)
}

func TestPlayCardPrefersLargestTake(t *testing.T) {
	p := playerWith("5H", "KS", "QH")
	b := boardOf("2C", "3S", "5D", "KH")

	take := p.PlayCard(card("5H"), b)

	// 2+3+5 with the played five reaches 15 and beats the single 5D.
	assert.Equal(t, NewCardSet(MustParseCards("2C", "3S", "5D", "5H")...), take.Cards)
	assert.Equal(t, MustParseCards("KH"), b.Cards)
}

func TestPlayCardTieBreaksOnEnumerationOrder(t *testing.T) {
	p := playerWith("5H", "KS", "QH")
	b := boardOf("2C", "3S", "4D", "6H")

	take := p.PlayCard(card("5H"), b)

	// {2C,3S} sums to 5 and {4D,6H} reaches 15: normal takes come first.
	assert.Equal(t, NewCardSet(MustParseCards("2C", "3S", "5H")...), take.Cards)
	assert.Equal(t, MustParseCards("4D", "6H"), b.Cards)
}

func TestSelectTakeSkipsEmptyTake(t *testing.T) {
	_, ok := SelectTake([]Take{{Value: 1}}, card("AS"), 0)
	assert.False(t, ok)
}

func TestBuonaBonuses(t *testing.T) {
	tests := []struct {
		name  string
		hand  []string
		ten   bool
		three bool
	}{
		{"three of a kind below ten", []string{"2C", "2S", "2H"}, true, true},
		{"three kings", []string{"KC", "KS", "KH"}, true, false},
		{"low sum", []string{"AC", "3S", "5H"}, false, true},
		{"sum of ten", []string{"AC", "4S", "5H"}, false, false},
		{"seven of clubs pair", []string{"7C", "4S", "4H"}, true, true},
		{"seven of clubs sum of nine", []string{"7C", "5S", "4H"}, false, false},
		{"seven of clubs low sum", []string{"7C", "AS", "6H"}, false, true},
		{"two cards", []string{"2C", "2S"}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := playerWith(tt.hand...)
			assert.Equal(t, tt.ten, p.IsBuonaTen())
			assert.Equal(t, tt.three, p.IsBuonaThree())
		})
	}
}

func TestPlayCardAwardsBuonaBeforeCapture(t *testing.T) {
	p := playerWith("2C", "2S", "2H")
	b := boardOf("KD")

	p.PlayCard(card("2C"), b)

	assert.Equal(t, 13, p.ScopaSum)
	assert.Equal(t, MustParseCards("KD", "2C"), b.Cards)

	// Only a full hand qualifies.
	p.PlayCard(card("2S"), b)
	assert.Equal(t, 13, p.ScopaSum)
}

func TestPlayCardNotInHandPanicsWithoutMutation(t *testing.T) {
	p := playerWith("2C", "2S", "2H")
	b := boardOf("KD")

	require.Panics(t, func() { p.PlayCard(card("KS"), b) })
	assert.Equal(t, 0, p.ScopaSum)
	assert.Equal(t, MustParseCards("KD"), b.Cards)
	assert.Len(t, p.Hand, 3)
}
