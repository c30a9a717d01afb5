// Package env exposes a Game through fixed integer action ids, one per
// deck card, for drivers that choose moves by index.
package env

import (
	"errors"
	"math/rand/v2"

	"cirulla/internal/game"
	"cirulla/internal/shared"

	"go.uber.org/zap"
)

// ErrNoLegalActions is returned when the player to move holds no cards,
// which only happens once the match is over.
var ErrNoLegalActions = errors.New("no legal actions")

// Env wraps a game with action-id decoding.
type Env struct {
	Game   *game.Game
	rng    *rand.Rand
	logger *zap.Logger
}

// New wraps g. rng picks the substitute action for undecodable ids and
// should be the same generator the game was built with.
func New(g *game.Game, rng *rand.Rand, logger *zap.Logger) *Env {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Env{Game: g, rng: rng, logger: logger}
}

// Reset starts a new match.
func (e *Env) Reset() (game.State, int) {
	return e.Game.Init()
}

// ActionID returns the fixed action slot of a card.
func ActionID(card shared.Card) int {
	return card.ID()
}

// LegalActionIDs returns the action ids of the current player's hand in
// hand order.
func (e *Env) LegalActionIDs() []int {
	hand := e.Game.LegalActions(e.Game.CurrentPlayer())
	ids := make([]int, 0, len(hand))
	for _, c := range hand {
		ids = append(ids, ActionID(c))
	}
	return ids
}

// DecodeAction maps an action id to a card the current player holds. Ids
// outside the deck or naming a card not in hand are replaced by a random
// legal card.
func (e *Env) DecodeAction(id int) (shared.Card, error) {
	hand := e.Game.LegalActions(e.Game.CurrentPlayer())
	if len(hand) == 0 {
		return shared.Card{}, ErrNoLegalActions
	}

	card, err := shared.CardFromID(id)
	if err == nil {
		for _, c := range hand {
			if c == card {
				return card, nil
			}
		}
		err = game.ErrCardNotInHand
	}

	substitute := hand[e.rng.IntN(len(hand))]
	e.logger.Warn("substituting random legal action",
		zap.Int("action_id", id),
		zap.Stringer("substitute", substitute),
		zap.Error(err),
	)
	return substitute, nil
}

// Step decodes the action id and plays it.
func (e *Env) Step(id int) (game.State, int, error) {
	card, err := e.DecodeAction(id)
	if err != nil {
		return game.State{}, e.Game.CurrentPlayer(), err
	}
	return e.Game.Step(card)
}

// StepBack undoes the last step.
func (e *Env) StepBack() bool {
	return e.Game.StepBack()
}

// NumActions is the constant size of the action space.
func (e *Env) NumActions() int {
	return game.NumActions()
}
