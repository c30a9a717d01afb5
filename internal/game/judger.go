package game

import (
	"fmt"

	"cirulla/internal/shared"
)

// primieraValues scores a card's value for the primiera count.
var primieraValues = map[int]int{
	7:  21,
	6:  18,
	1:  16,
	5:  15,
	4:  14,
	3:  13,
	2:  12,
	10: 10,
	9:  10,
	8:  10,
}

// primieraBenchmark is two sevens and two sixes.
const primieraBenchmark = 21*2 + 18*2

var (
	grandeCards     = shared.NewCardSet(shared.MustParseCards("JD", "QD", "KD")...)
	piccolaCards    = shared.NewCardSet(shared.MustParseCards("AD", "2D", "3D")...)
	piccolaExtended = shared.MustParseCards("4D", "5D", "6D")
	settebello      = shared.NewCard(shared.Diamonds, shared.Seven)
)

// Outcome is the result of a finished match: a decisive winner or a draw.
type Outcome struct {
	Draw   bool `json:"draw"`
	Winner int  `json:"winner"` // Seat of the winner, -1 on a draw
}

// Decisive returns the outcome where the given seat wins.
func Decisive(playerID int) Outcome { return Outcome{Winner: playerID} }

// DrawOutcome returns the outcome where neither seat wins.
func DrawOutcome() Outcome { return Outcome{Draw: true, Winner: -1} }

func (o Outcome) String() string {
	if o.Draw {
		return "draw"
	}
	return fmt.Sprintf("player %d", o.Winner)
}

// Breakdown lists what each scoring category contributed.
type Breakdown struct {
	Grande     int `json:"grande"`
	Piccola    int `json:"piccola"`
	Settebello int `json:"settebello"`
	Primiera   int `json:"primiera"`
	Cards      int `json:"cards"`
	Diamonds   int `json:"diamonds"`
	Scopa      int `json:"scopa"`
}

// Total sums every category.
func (b Breakdown) Total() int {
	return b.Grande + b.Piccola + b.Settebello + b.Primiera + b.Cards + b.Diamonds + b.Scopa
}

// Judger scores won-card piles at the end of a match. It holds no state.
type Judger struct{}

// JudgeWinner compares the two players' points.
func (j Judger) JudgeWinner(players [2]*shared.Player) Outcome {
	p0, p1 := j.CountPoints(players[0]), j.CountPoints(players[1])
	switch {
	case p0 == p1:
		return DrawOutcome()
	case p0 < p1:
		return Decisive(players[1].ID)
	default:
		return Decisive(players[0].ID)
	}
}

// CountPoints returns a player's final score.
func (j Judger) CountPoints(p *shared.Player) int {
	return j.Breakdown(p).Total()
}

// Breakdown scores each category for the player.
func (j Judger) Breakdown(p *shared.Player) Breakdown {
	won := shared.NewCardSet(p.WonCards...)
	b := Breakdown{Scopa: p.ScopaSum}

	if won.IsSuperset(grandeCards) {
		b.Grande = 5
	}

	if won.IsSuperset(piccolaCards) {
		b.Piccola = 3
		for _, c := range piccolaExtended {
			if !won.Contains(c) {
				break
			}
			b.Piccola++
		}
	}

	if won.Contains(settebello) {
		b.Settebello = 1
	}

	if primieraTotal(p) >= primieraBenchmark {
		b.Primiera = 1
	}

	if len(p.WonCards) >= 21 {
		b.Cards = 1
	}

	diamonds := 0
	for _, c := range p.WonCards {
		if c.Suit == shared.Diamonds {
			diamonds++
		}
	}
	if diamonds >= 6 {
		b.Diamonds = 1
	}

	return b
}

// primieraTotal sums the best primiera card of every suit. A pile missing
// a suit cannot make primiera and totals 0.
func primieraTotal(p *shared.Player) int {
	total := 0
	for _, suit := range shared.Suits {
		if !p.HasWonSuit(suit) {
			return 0
		}
		total += primieraValues[BestPrimieraCard(p.WonCards, suit).Value]
	}
	return total
}

// BestPrimieraCard returns the card of the suit with the highest primiera
// value. Asking about a suit that is absent from cards is a programming
// error and panics.
func BestPrimieraCard(cards []shared.Card, suit shared.Suit) shared.Card {
	var best shared.Card
	found := false
	for _, c := range cards {
		if c.Suit != suit {
			continue
		}
		if !found || primieraValues[c.Value] > primieraValues[best.Value] {
			best, found = c, true
		}
	}
	if !found {
		panic(fmt.Sprintf("game: no %s cards to pick a primiera card from", suit))
	}
	return best
}
