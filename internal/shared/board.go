package shared

import "fmt"

// MaxEnumerableBoard bounds the board size the take search will accept.
// Enumeration is over every subset of the board, so the cost doubles with
// each card; dealing three cards a hand keeps real boards far below this.
const MaxEnumerableBoard = 24

// reachTarget is the sum a played card may complete with board cards.
const reachTarget = 15

// Board is the pool of face-up cards that can be captured.
type Board struct {
	Cards []Card
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{Cards: []Card{}}
}

// FindNormalTakes returns every subset of the board, the empty one
// included, whose card values sum to at most MaxCardValue. Takes are
// ordered by their bitmask over board positions.
func (b *Board) FindNormalTakes() []Take {
	n := len(b.Cards)
	if n > MaxEnumerableBoard {
		panic(fmt.Sprintf("shared: board of %d cards exceeds the enumeration bound %d", n, MaxEnumerableBoard))
	}

	takes := []Take{}
	for mask := uint32(0); mask < 1<<uint(n); mask++ {
		var t Take
		for i := 0; i < n && t.Value <= MaxCardValue; i++ {
			if mask&(1<<uint(i)) != 0 {
				t = t.Add(b.Cards[i])
			}
		}
		if t.Value <= MaxCardValue {
			takes = append(takes, t)
		}
	}
	return takes
}

// FindAllTakes extends the normal takes with the reach-15 variants (same
// cards, value 15 minus their sum) and, when no ace is on the board, the
// ace sweep over the whole board.
func (b *Board) FindAllTakes() []Take {
	takes := b.FindNormalTakes()

	reach := make([]Take, 0, len(takes))
	for _, t := range takes {
		if v := reachTarget - t.Value; v <= MaxCardValue {
			reach = append(reach, Take{Cards: t.Cards, Value: v})
		}
	}
	takes = append(takes, reach...)

	if !b.HasAce() {
		takes = append(takes, Take{Cards: NewCardSet(b.Cards...), Value: 1})
	}
	return takes
}

// HasAce reports whether an ace is face up.
func (b *Board) HasAce() bool {
	for _, c := range b.Cards {
		if c.Value == 1 {
			return true
		}
	}
	return false
}

func (b *Board) IsEmpty() bool {
	return len(b.Cards) == 0
}

func (b *Board) Len() int {
	return len(b.Cards)
}

// Add places a card face up.
func (b *Board) Add(c Card) {
	b.Cards = append(b.Cards, c)
}

// Remove takes the cards of the set off the board, keeping the order of
// the rest, and returns the removed cards in board order.
func (b *Board) Remove(set CardSet) []Card {
	removed := []Card{}
	kept := make([]Card, 0, len(b.Cards))
	for _, c := range b.Cards {
		if set.Contains(c) {
			removed = append(removed, c)
		} else {
			kept = append(kept, c)
		}
	}
	b.Cards = kept
	return removed
}

// Clear empties the board and returns what was on it.
func (b *Board) Clear() []Card {
	cards := b.Cards
	b.Cards = []Card{}
	return cards
}

func (b *Board) String() string {
	return fmt.Sprint(CardStrings(b.Cards))
}
