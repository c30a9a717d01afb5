package shared

import (
	"fmt"
	"math/rand/v2"
)

// Dealer owns the draw pile. Cards are dealt from the end of the pile and
// the opening four are flipped from the front.
type Dealer struct {
	Cards []Card
}

// NewDeck returns the 40 Cirulla cards in ID order.
func NewDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// NewDealer creates a dealer holding a full, unshuffled deck.
func NewDealer() *Dealer {
	return &Dealer{Cards: NewDeck()}
}

// Shuffle randomizes the order of cards in the pile.
func (d *Dealer) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// DealCards moves n cards from the top of the pile into the player's hand.
// Dealing from a short pile is a programming error.
func (d *Dealer) DealCards(p *Player, n int) {
	if len(d.Cards) < n {
		panic(fmt.Sprintf("shared: cannot deal %d cards from a pile of %d", n, len(d.Cards)))
	}
	for i := 0; i < n; i++ {
		last := len(d.Cards) - 1
		p.AddCard(d.Cards[last])
		d.Cards = d.Cards[:last]
	}
}

// FlipTop4Cards removes the first four cards of the pile for the opening board.
func (d *Dealer) FlipTop4Cards() []Card {
	if len(d.Cards) < 4 {
		panic(fmt.Sprintf("shared: cannot flip 4 cards from a pile of %d", len(d.Cards)))
	}
	top := make([]Card, 4)
	copy(top, d.Cards[:4])
	d.Cards = d.Cards[4:]
	return top
}

// IsDeckEmpty reports whether every card has been dealt.
func (d *Dealer) IsDeckEmpty() bool {
	return len(d.Cards) == 0
}

// Len returns the number of cards left in the pile.
func (d *Dealer) Len() int {
	return len(d.Cards)
}

// PutBack returns cards to the top of the pile; the last argument ends up on top.
func (d *Dealer) PutBack(cards ...Card) {
	d.Cards = append(d.Cards, cards...)
}
