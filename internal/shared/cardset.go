package shared

import "math/bits"

// CardSet is a set of deck cards stored as a bitmask over card IDs.
type CardSet uint64

// NewCardSet builds a set from the given cards.
func NewCardSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s = s.Add(c)
	}
	return s
}

func (s CardSet) Add(c Card) CardSet { return s | 1<<uint(c.ID()) }
func (s CardSet) Remove(c Card) CardSet { return s &^ (1 << uint(c.ID())) }
func (s CardSet) Contains(c Card) bool { return s&(1<<uint(c.ID())) != 0 }
func (s CardSet) Len() int { return bits.OnesCount64(uint64(s)) }
func (s CardSet) IsSuperset(o CardSet) bool { return s&o == o }

// Cards lists the members in ID order.
func (s CardSet) Cards() []Card {
	cards := make([]Card, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		c, err := CardFromID(bits.TrailingZeros64(v))
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}
