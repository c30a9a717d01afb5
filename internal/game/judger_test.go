package game

import (
	"testing"

	"cirulla/internal/shared"

	"github.com/stretchr/testify/assert"
)

func wonBy(id int, cards ...string) *shared.Player {
	p := shared.NewPlayer(id)
	p.WonCards = shared.MustParseCards(cards...)
	return p
}

func TestBreakdownCategories(t *testing.T) {
	tests := []struct {
		name string
		won  []string
		want Breakdown
	}{
		{
			name: "grande",
			won:  []string{"JD", "QD", "KD"},
			want: Breakdown{Grande: 5},
		},
		{
			name: "piccola extended",
			won:  []string{"AD", "2D", "3D", "4D", "5D"},
			want: Breakdown{Piccola: 5},
		},
		{
			name: "piccola stops at first gap",
			won:  []string{"AD", "2D", "3D", "5D", "6D"},
			want: Breakdown{Piccola: 3},
		},
		{
			name: "piccola incomplete",
			won:  []string{"AD", "3D", "4D"},
			want: Breakdown{},
		},
		{
			name: "settebello",
			won:  []string{"7D"},
			want: Breakdown{Settebello: 1},
		},
		{
			name: "primiera two sevens two sixes",
			won:  []string{"7S", "7H", "6D", "6C"},
			want: Breakdown{Primiera: 1},
		},
		{
			name: "primiera just short",
			won:  []string{"7S", "7H", "6D", "5C"},
			want: Breakdown{},
		},
		{
			name: "primiera needs every suit",
			won:  []string{"7S", "7H", "7D", "6H"},
			want: Breakdown{Settebello: 1},
		},
		{
			name: "diamonds",
			won:  []string{"4D", "5D", "6D", "QD", "KD", "2D"},
			want: Breakdown{Diamonds: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Judger{}.Breakdown(wonBy(0, tt.won...)))
		})
	}
}

func TestBreakdownCardsAndScopa(t *testing.T) {
	p := shared.NewPlayer(0)
	for _, c := range shared.NewDeck() {
		if c.Suit != shared.Diamonds && len(p.WonCards) < 21 {
			p.WonCards = append(p.WonCards, c)
		}
	}
	p.ScopaSum = 4

	b := Judger{}.Breakdown(p)

	assert.Equal(t, 1, b.Cards)
	assert.Equal(t, 4, b.Scopa)
	assert.Equal(t, 5, b.Total())
}

func TestCountPointsMixedPile(t *testing.T) {
	p := wonBy(0, "7C", "7S", "2H", "4D", "7D", "6H", "KD", "AD", "2D", "3D")

	// piccola 3+1, settebello, primiera 21+18+21+21, six diamonds.
	assert.Equal(t, 7, Judger{}.CountPoints(p))
}

func TestJudgeWinner(t *testing.T) {
	strong := wonBy(0, "7C", "7S", "2H", "4D", "7D", "6H", "KD", "AD", "2D", "3D")
	weak := wonBy(1, "AC", "QS", "3H", "5D", "JC")

	assert.Equal(t, Decisive(0), Judger{}.JudgeWinner([2]*shared.Player{strong, weak}))

	weak.ScopaSum = 8
	assert.Equal(t, Decisive(1), Judger{}.JudgeWinner([2]*shared.Player{strong, weak}))

	weak.ScopaSum = 7
	assert.Equal(t, DrawOutcome(), Judger{}.JudgeWinner([2]*shared.Player{strong, weak}))
}

func TestJudgeWinnerEmptyPilesDraw(t *testing.T) {
	out := Judger{}.JudgeWinner([2]*shared.Player{shared.NewPlayer(0), shared.NewPlayer(1)})
	assert.True(t, out.Draw)
	assert.Equal(t, "draw", out.String())
}

func TestBestPrimieraCard(t *testing.T) {
	cards := shared.MustParseCards("KS", "6S", "AS", "7H")

	assert.Equal(t, shared.NewCard(shared.Spades, shared.Six), BestPrimieraCard(cards, shared.Spades))
	assert.Equal(t, shared.NewCard(shared.Hearts, shared.Seven), BestPrimieraCard(cards, shared.Hearts))
	assert.Panics(t, func() { BestPrimieraCard(cards, shared.Clubs) })
}
