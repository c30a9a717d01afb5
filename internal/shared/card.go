package shared

import (
	"errors"
	"fmt"
	"strings"
)

// Suit represents the suit of a card (Spades, Hearts, Diamonds, Clubs).
type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

// Rank is the face of a card within its suit.
type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// DeckSize is the number of cards in a Cirulla deck.
const DeckSize = 40

// MaxCardValue is the highest value a single card can have (King).
const MaxCardValue = 10

// Suits and Ranks in deck order. A card's ID is suitIndex*10 + rankIndex.
var (
	Suits = []Suit{Spades, Hearts, Diamonds, Clubs}
	Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Jack, Queen, King}
)

// ErrInvalidCardID is returned when an action index does not name a deck card.
var ErrInvalidCardID = errors.New("invalid card id")

// Card represents a single card. Cards are compared by value and encode
// as their rank+suit text, e.g. "7D".
type Card struct {
	Suit  Suit
	Rank  Rank
	Value int // 1..10, J=8 Q=9 K=10
}

var rankValues = map[Rank]int{
	Ace:   1,
	Two:   2,
	Three: 3,
	Four:  4,
	Five:  5,
	Six:   6,
	Seven: 7,
	Jack:  8,
	Queen: 9,
	King:  10,
}

// NewCard builds a card, deriving its value from the rank.
// It panics on an unknown suit or rank.
func NewCard(suit Suit, rank Rank) Card {
	value, ok := rankValues[rank]
	if !ok || suitIndex(suit) < 0 {
		panic(fmt.Sprintf("shared: invalid card %s%s", rank, suit))
	}
	return Card{Suit: suit, Rank: rank, Value: value}
}

// ParseCard parses the rank+suit notation used by String, e.g. "7D" or "KS".
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Card{}, fmt.Errorf("parse card %q: want rank followed by suit", s)
	}
	rank, suit := Rank(s[:1]), Suit(s[1:])
	if _, ok := rankValues[rank]; !ok {
		return Card{}, fmt.Errorf("parse card %q: unknown rank", s)
	}
	if suitIndex(suit) < 0 {
		return Card{}, fmt.Errorf("parse card %q: unknown suit", s)
	}
	return NewCard(suit, rank), nil
}

// MustParseCards parses a list of cards and panics on the first bad one.
// Intended for tables and tests.
func MustParseCards(ss ...string) []Card {
	cards := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

// CardFromID maps an action index in [0, DeckSize) back to its card.
func CardFromID(id int) (Card, error) {
	if id < 0 || id >= DeckSize {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidCardID, id)
	}
	return NewCard(Suits[id/len(Ranks)], Ranks[id%len(Ranks)]), nil
}

// ID returns the card's fixed slot in [0, DeckSize).
func (c Card) ID() int {
	return suitIndex(c.Suit)*len(Ranks) + rankIndex(c.Rank)
}

func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CardStrings renders cards in order. It never returns nil.
func CardStrings(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return out
}

func suitIndex(s Suit) int {
	for i, v := range Suits {
		if v == s {
			return i
		}
	}
	return -1
}

func rankIndex(r Rank) int {
	for i, v := range Ranks {
		if v == r {
			return i
		}
	}
	return -1
}
