package game

import "cirulla/internal/shared"

// State is one player's view of the table. Every slice is a copy.
type State struct {
	NumPlayers    int           `json:"num_players"`
	PlayerID      int           `json:"player_id"`
	CurrentPlayer int           `json:"current_player"`
	Hand          []shared.Card `json:"hand"`
	OtherHand     []shared.Card `json:"other_hand"`
	Board         []shared.Card `json:"board"`
	WonCards      []shared.Card `json:"won_cards"`
	OtherWonCards []shared.Card `json:"other_won_cards"`
	LegalActions  []shared.Card `json:"legal_actions"`
	NumCards      [2]int        `json:"num_cards"`
	ScopaSum      int           `json:"scopa_sum"`
	OtherScopaSum int           `json:"other_scopa_sum"`
	DeckSize      int           `json:"deck_size"`
}

// State builds the view of the table for playerID.
func (g *Game) State(playerID int) State {
	me, other := g.Players[playerID], g.Players[1-playerID]
	return State{
		NumPlayers:    numPlayers,
		PlayerID:      playerID,
		CurrentPlayer: g.currentPlayer,
		Hand:          cloneCards(me.Hand),
		OtherHand:     cloneCards(other.Hand),
		Board:         cloneCards(g.Board.Cards),
		WonCards:      cloneCards(me.WonCards),
		OtherWonCards: cloneCards(other.WonCards),
		LegalActions:  g.LegalActions(playerID),
		NumCards:      [2]int{len(g.Players[0].Hand), len(g.Players[1].Hand)},
		ScopaSum:      me.ScopaSum,
		OtherScopaSum: other.ScopaSum,
		DeckSize:      g.Dealer.Len(),
	}
}

func cloneCards(cards []shared.Card) []shared.Card {
	return append([]shared.Card{}, cards...)
}
