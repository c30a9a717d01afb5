package shared

// Take is a candidate capture: a set of board cards and the value the
// played card must have to collect them.
type Take struct {
	Cards CardSet
	Value int
}

// NewTake builds a take whose value is the sum of its cards.
func NewTake(cards ...Card) Take {
	t := Take{}
	for _, c := range cards {
		t = t.Add(c)
	}
	return t
}

// Add returns the take with c included and its value raised accordingly.
func (t Take) Add(c Card) Take {
	if t.Cards.Contains(c) {
		return t
	}
	return Take{Cards: t.Cards.Add(c), Value: t.Value + c.Value}
}

// Equal compares takes by card set only.
func (t Take) Equal(o Take) bool {
	return t.Cards == o.Cards
}

// IsEmpty reports whether the take captures nothing.
func (t Take) IsEmpty() bool {
	return t.Cards == 0
}

// Len returns the number of cards in the take.
func (t Take) Len() int {
	return t.Cards.Len()
}

func (t Take) String() string {
	s := "{"
	for i, c := range t.Cards.Cards() {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s + "}"
}
