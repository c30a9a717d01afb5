package shared

import "fmt"

const (
	buonaTenBonus   = 10
	buonaThreeBonus = 3
	scopaBonus      = 1
)

// buonaWildcard is left out of the buona checks: the seven of clubs.
var buonaWildcard = Card{Suit: Clubs, Rank: Seven, Value: 7}

// Player represents one of the two seats at the table.
type Player struct {
	ID       int    // Seat index, 0 or 1
	Hand     []Card // Cards currently held, at most 3 during a round
	WonCards []Card // Everything captured this match
	ScopaSum int    // Bonus points (scope, buone, opening flips) this match
}

// NewPlayer creates a player for the given seat.
func NewPlayer(id int) *Player {
	return &Player{
		ID:       id,
		Hand:     []Card{},
		WonCards: []Card{},
	}
}

// AddCard adds a card to the player's hand.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// HandIndex returns the position of card in the hand, or -1.
func (p *Player) HandIndex(card Card) int {
	for i, c := range p.Hand {
		if c == card {
			return i
		}
	}
	return -1
}

// HasCard reports whether the card is in the player's hand.
func (p *Player) HasCard(card Card) bool {
	return p.HandIndex(card) >= 0
}

// RemoveCard removes a card from the player's hand.
func (p *Player) RemoveCard(card Card) bool {
	i := p.HandIndex(card)
	if i < 0 {
		return false
	}
	p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)
	return true
}

// HasWonSuit reports whether any won card is of the given suit.
func (p *Player) HasWonSuit(suit Suit) bool {
	for _, c := range p.WonCards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// IsBuonaTen reports a full hand whose cards, the seven of clubs aside,
// all share one value.
func (p *Player) IsBuonaTen() bool {
	if len(p.Hand) != 3 {
		return false
	}
	value := -1
	for _, c := range p.Hand {
		if c == buonaWildcard {
			continue
		}
		if value >= 0 && c.Value != value {
			return false
		}
		value = c.Value
	}
	return true
}

// IsBuonaThree reports a full hand summing below 10, or below 9 without
// the seven of clubs when it is held.
func (p *Player) IsBuonaThree() bool {
	if len(p.Hand) != 3 {
		return false
	}
	sum, limit := 0, 10
	for _, c := range p.Hand {
		if c == buonaWildcard {
			limit = 9
			continue
		}
		sum += c.Value
	}
	return sum < limit
}

// PlayCard plays card from the hand against the board and returns the
// take actually applied, played card included. The take is empty when
// the card was left on the board.
func (p *Player) PlayCard(card Card, board *Board) Take {
	if !p.HasCard(card) {
		panic(fmt.Sprintf("shared: player %d played %s which is not in hand %v", p.ID, card, CardStrings(p.Hand)))
	}

	if p.IsBuonaTen() {
		p.ScopaSum += buonaTenBonus
	}
	if p.IsBuonaThree() {
		p.ScopaSum += buonaThreeBonus
	}

	var applied Take
	switch {
	case card.Value == 1 && !board.HasAce() && !board.IsEmpty():
		// An ace sweeps an ace-free board.
		captured := board.Clear()
		p.WonCards = append(p.WonCards, captured...)
		p.WonCards = append(p.WonCards, card)
		p.ScopaSum += scopaBonus
		applied = NewTake(captured...).Add(card)
		applied.Value = 1

	default:
		take, ok := SelectTake(board.FindAllTakes(), card, board.Len())
		if !ok {
			board.Add(card)
			break
		}
		captured := board.Remove(take.Cards)
		p.WonCards = append(p.WonCards, captured...)
		p.WonCards = append(p.WonCards, card)
		if board.IsEmpty() {
			p.ScopaSum += scopaBonus
		}
		applied = Take{Cards: take.Cards.Add(card), Value: take.Value}
	}

	p.RemoveCard(card)
	return applied
}

// SelectTake picks the take a card of the given value captures. A take
// clearing the whole board wins outright; otherwise the largest take wins
// and, among equal sizes, the first one in enumeration order. The empty
// take never qualifies.
func SelectTake(takes []Take, card Card, boardLen int) (Take, bool) {
	var best Take
	found := false
	for _, t := range takes {
		if t.Value != card.Value || t.IsEmpty() {
			continue
		}
		if t.Len() == boardLen {
			return t, true
		}
		if !found || t.Len() > best.Len() {
			best, found = t, true
		}
	}
	return best, found
}

func (p *Player) String() string {
	return fmt.Sprintf("Player %d: hand=%v won=%d scopa=%d", p.ID, CardStrings(p.Hand), len(p.WonCards), p.ScopaSum)
}
