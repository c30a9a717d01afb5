package game

import (
	"fmt"

	"cirulla/internal/shared"
)

// move is the undo record of one step. Hands, piles and the deck only
// grow or shrink at their ends during a step, so lengths and the played
// card's hand position are enough to rewind them; the board is small and
// is kept whole.
type move struct {
	player    int
	card      shared.Card
	handIndex int
	board     []shared.Card
	wonLen    [numPlayers]int
	scopaSum  [numPlayers]int
	dealt     bool // the step emptied both hands and dealt new ones
	endedGame bool // the step ended the match
}

func (g *Game) record(card shared.Card, handIndex int) move {
	rec := move{
		player:    g.currentPlayer,
		card:      card,
		handIndex: handIndex,
		board:     append([]shared.Card{}, g.Board.Cards...),
	}
	for i, p := range g.Players {
		rec.wonLen[i] = len(p.WonCards)
		rec.scopaSum[i] = p.ScopaSum
	}
	return rec
}

func (g *Game) undo(rec move) {
	if rec.dealt {
		// Hands were dealt seat by seat from the top of the pile, so they
		// go back in the reverse order.
		for i := numPlayers - 1; i >= 0; i-- {
			hand := g.Players[i].Hand
			for j := len(hand) - 1; j >= 0; j-- {
				g.Dealer.PutBack(hand[j])
			}
			g.Players[i].Hand = []shared.Card{}
		}
	}
	if rec.endedGame {
		g.phase = InRound
		g.winner = DrawOutcome()
	}

	g.Board.Cards = rec.board
	for i, p := range g.Players {
		p.WonCards = p.WonCards[:rec.wonLen[i]]
		p.ScopaSum = rec.scopaSum[i]
	}

	mover := g.Players[rec.player]
	hand := make([]shared.Card, 0, len(mover.Hand)+1)
	hand = append(hand, mover.Hand[:rec.handIndex]...)
	hand = append(hand, rec.card)
	mover.Hand = append(hand, mover.Hand[rec.handIndex:]...)

	g.switchPlayer()
	if g.currentPlayer != rec.player {
		panic(fmt.Sprintf("game: undo restored turn to player %d, record belongs to player %d", g.currentPlayer, rec.player))
	}
}
