package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"cirulla/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Phase is where a match is in its lifecycle. Round ends are not a phase
// of their own: the next hands are dealt within the same step.
type Phase string

const (
	NotStarted Phase = "NotStarted" // New returned, Init not called yet
	InRound    Phase = "InRound"    // Players are taking turns
	GameOver   Phase = "GameOver"   // Deck and hands exhausted, winner judged
)

const (
	numPlayers   = 2
	handSize     = 3
	openingSum   = 15
	openingTwice = 30
)

var (
	ErrNotStarted    = errors.New("game not started")
	ErrGameOver      = errors.New("game is over")
	ErrCardNotInHand = errors.New("card not in hand")
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for match events.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithStepBack enables or disables recording moves for StepBack.
func WithStepBack(allow bool) Option {
	return func(g *Game) { g.allowStepBack = allow }
}

// Game is the two-player Cirulla state machine. It is not safe for
// concurrent use; callers drive it one Step at a time.
type Game struct {
	ID      string
	Players [numPlayers]*shared.Player
	Board   *shared.Board
	Dealer  *shared.Dealer
	Judger  Judger

	phase         Phase
	currentPlayer int
	winner        Outcome
	allowStepBack bool

	// history grows by one record per step for the whole match.
	history []move

	rng    *rand.Rand
	logger *zap.Logger
	log    *zap.Logger
}

// New creates a match that draws every random choice from rng. A nil rng
// is replaced by a time-seeded one.
func New(rng *rand.Rand, opts ...Option) *Game {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	g := &Game{
		Players:       [numPlayers]*shared.Player{shared.NewPlayer(0), shared.NewPlayer(1)},
		Board:         shared.NewBoard(),
		Dealer:        shared.NewDealer(),
		phase:         NotStarted,
		winner:        DrawOutcome(),
		allowStepBack: true,
		rng:           rng,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.logger
	return g
}

// Init starts a fresh match: shuffles, flips the opening four, deals the
// first hands and clears the undo history. It may be called again to reset.
func (g *Game) Init() (State, int) {
	g.ID = uuid.NewString()
	g.log = g.logger.With(zap.String("game_id", g.ID))

	for i := range g.Players {
		g.Players[i] = shared.NewPlayer(i)
	}
	g.Board = shared.NewBoard()
	g.Dealer = shared.NewDealer()
	g.Dealer.Shuffle(g.rng)
	g.currentPlayer = g.rng.IntN(numPlayers)
	g.winner = DrawOutcome()
	g.history = nil

	g.flipOpening()
	for _, p := range g.Players {
		g.Dealer.DealCards(p, handSize)
	}
	g.phase = InRound

	g.log.Info("match started",
		zap.Int("first_player", g.currentPlayer),
		zap.Strings("board", shared.CardStrings(g.Board.Cards)),
	)
	return g.State(g.currentPlayer), g.currentPlayer
}

// flipOpening puts the top four cards on the board. When they sum to 15
// or 30 the flipping player collects them for 1 or 2 points. The turn
// then passes to the other player.
func (g *Game) flipOpening() {
	top := g.Dealer.FlipTop4Cards()
	sum := 0
	for _, c := range top {
		sum += c.Value
	}

	if sum == openingSum || sum == openingTwice {
		points := sum / openingSum
		flipper := g.Players[g.currentPlayer]
		flipper.ScopaSum += points
		flipper.WonCards = append(flipper.WonCards, top...)
		g.log.Info("opening flip captured",
			zap.Int("player", flipper.ID),
			zap.Int("sum", sum),
			zap.Int("points", points),
		)
	} else {
		g.Board.Cards = top
	}
	g.switchPlayer()
}

// Step plays card for the current player, deals the next hands or ends
// the match as needed, and passes the turn. It returns the state seen by
// the player now to move.
func (g *Game) Step(card shared.Card) (State, int, error) {
	switch g.phase {
	case NotStarted:
		return State{}, g.currentPlayer, ErrNotStarted
	case GameOver:
		return State{}, g.currentPlayer, ErrGameOver
	}

	player := g.Players[g.currentPlayer]
	handIndex := player.HandIndex(card)
	if handIndex < 0 {
		return State{}, g.currentPlayer, fmt.Errorf("player %d playing %s: %w", player.ID, card, ErrCardNotInHand)
	}

	rec := g.record(card, handIndex)
	scopaBefore := player.ScopaSum
	take := player.PlayCard(card, g.Board)

	g.log.Debug("card played",
		zap.Int("player", player.ID),
		zap.Stringer("card", card),
		zap.Stringer("take", take),
		zap.Int("scopa_delta", player.ScopaSum-scopaBefore),
	)

	handsEmpty := len(g.Players[0].Hand) == 0 && len(g.Players[1].Hand) == 0
	switch {
	case handsEmpty && g.Dealer.IsDeckEmpty():
		g.endGame(player)
		rec.endedGame = true
	case handsEmpty:
		for _, p := range g.Players {
			g.Dealer.DealCards(p, handSize)
		}
		rec.dealt = true
		g.log.Info("new hands dealt", zap.Int("deck_left", g.Dealer.Len()))
	}

	g.switchPlayer()
	if g.allowStepBack {
		g.history = append(g.history, rec)
	}
	return g.State(g.currentPlayer), g.currentPlayer, nil
}

// endGame gives the leftover board to the last mover and judges the match.
func (g *Game) endGame(lastMover *shared.Player) {
	leftover := g.Board.Clear()
	lastMover.WonCards = append(lastMover.WonCards, leftover...)
	g.winner = g.Judger.JudgeWinner(g.Players)
	g.phase = GameOver

	g.log.Info("match over",
		zap.Stringer("winner", g.winner),
		zap.Int("leftover", len(leftover)),
		zap.Int("points_0", g.Judger.CountPoints(g.Players[0])),
		zap.Int("points_1", g.Judger.CountPoints(g.Players[1])),
	)
}

// switchPlayer is the only place the turn changes hands.
func (g *Game) switchPlayer() {
	g.currentPlayer = 1 - g.currentPlayer
}

// StepBack undoes the most recent step. It reports false, changing
// nothing, when there is no step to undo.
func (g *Game) StepBack() bool {
	if len(g.history) == 0 {
		return false
	}
	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.undo(rec)

	g.log.Debug("stepped back",
		zap.Int("player", rec.player),
		zap.Stringer("card", rec.card),
		zap.Int("history", len(g.history)),
	)
	return true
}

// CurrentPlayer returns the seat whose turn it is.
func (g *Game) CurrentPlayer() int {
	return g.currentPlayer
}

// Phase returns the lifecycle phase of the match.
func (g *Game) Phase() Phase {
	return g.phase
}

// IsOver reports whether the match has ended.
func (g *Game) IsOver() bool {
	return g.phase == GameOver
}

// Winner returns the judged outcome once the match is over.
func (g *Game) Winner() (Outcome, bool) {
	return g.winner, g.phase == GameOver
}

// LegalActions returns the player's hand: any held card may be played.
func (g *Game) LegalActions(playerID int) []shared.Card {
	return append([]shared.Card{}, g.Players[playerID].Hand...)
}

// Payoffs returns +1/-1 for a decisive result and 0/0 otherwise,
// including while the match is still running.
func (g *Game) Payoffs() [numPlayers]int {
	var payoffs [numPlayers]int
	if w, over := g.Winner(); over && !w.Draw {
		payoffs[w.Winner] = 1
		payoffs[1-w.Winner] = -1
	}
	return payoffs
}

// Points returns the scoring breakdown of a player's current pile.
func (g *Game) Points(playerID int) Breakdown {
	return g.Judger.Breakdown(g.Players[playerID])
}

// HistoryLen returns the number of steps that can be undone.
func (g *Game) HistoryLen() int {
	return len(g.history)
}

// NumPlayers is always 2.
func (g *Game) NumPlayers() int {
	return numPlayers
}

// NumActions is the size of the action space: one slot per deck card.
func (g *Game) NumActions() int {
	return NumActions()
}

// NumActions is the size of the action space: one slot per deck card.
func NumActions() int {
	return shared.DeckSize
}
