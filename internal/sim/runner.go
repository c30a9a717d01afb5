// Package sim plays seeded random matches through the env adapter.
package sim

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"cirulla/internal/config"
	"cirulla/internal/env"
	"cirulla/internal/game"
	"cirulla/internal/protocol"

	"go.uber.org/zap"
)

// Summary aggregates the results of a run.
type Summary struct {
	Matches     int
	Wins        [2]int
	Draws       int
	TotalPoints [2]int
	Steps       int
	StepBacks   int
}

// AveragePoints returns each seat's mean final score.
func (s Summary) AveragePoints() [2]float64 {
	var avg [2]float64
	if s.Matches == 0 {
		return avg
	}
	for i, p := range s.TotalPoints {
		avg[i] = float64(p) / float64(s.Matches)
	}
	return avg
}

// Runner drives matches with uniformly random legal moves.
type Runner struct {
	env    *env.Env
	rng    *rand.Rand
	cfg    config.SimConfig
	out    io.Writer // transcript sink, nil when disabled
	logger *zap.Logger
}

// NewRunner builds a runner around a fresh game seeded from rng.
func NewRunner(rng *rand.Rand, gameCfg config.GameConfig, simCfg config.SimConfig, out io.Writer, logger *zap.Logger) *Runner {
	g := game.New(rng, game.WithLogger(logger), game.WithStepBack(gameCfg.AllowStepBack))
	if !simCfg.Transcript {
		out = nil
	}
	return &Runner{
		env:    env.New(g, rng, logger),
		rng:    rng,
		cfg:    simCfg,
		out:    out,
		logger: logger,
	}
}

// Run plays the configured number of matches, stopping early if ctx is
// cancelled between matches.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	for match := 0; match < r.cfg.Games; match++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		if err := r.playMatch(match, &sum); err != nil {
			return sum, fmt.Errorf("match %d: %w", match, err)
		}
	}

	avg := sum.AveragePoints()
	r.logger.Info("run finished",
		zap.Int("matches", sum.Matches),
		zap.Ints("wins", sum.Wins[:]),
		zap.Int("draws", sum.Draws),
		zap.Float64s("avg_points", avg[:]),
		zap.Int("steps", sum.Steps),
		zap.Int("step_backs", sum.StepBacks),
	)
	return sum, nil
}

func (r *Runner) playMatch(match int, sum *Summary) error {
	g := r.env.Game
	_, first := r.env.Reset()
	if err := r.emit(protocol.TypeMatchStart, protocol.MatchStartPayload{
		GameID:      g.ID,
		Match:       match,
		FirstPlayer: first,
		Board:       g.Board.Cards,
		ScopaSums:   scopaSums(g),
	}); err != nil {
		return err
	}

	steps := 0
	for !g.IsOver() {
		ids := r.env.LegalActionIDs()
		mover := g.CurrentPlayer()
		card, err := r.env.DecodeAction(ids[r.rng.IntN(len(ids))])
		if err != nil {
			return err
		}
		_, next, err := g.Step(card)
		if err != nil {
			return err
		}
		steps++
		sum.Steps++
		if err := r.emit(protocol.TypeStep, protocol.StepPayload{
			GameID:     g.ID,
			Player:     mover,
			Card:       card,
			Board:      g.Board.Cards,
			ScopaSums:  scopaSums(g),
			NextPlayer: next,
		}); err != nil {
			return err
		}

		if r.cfg.StepBackEvery > 0 && steps%r.cfg.StepBackEvery == 0 && !g.IsOver() {
			if !r.env.StepBack() {
				return fmt.Errorf("step back after %d steps found no history", steps)
			}
			sum.StepBacks++
			if err := r.emit(protocol.TypeStepBack, protocol.StepBackPayload{
				GameID:  g.ID,
				Undone:  steps,
				History: g.HistoryLen(),
			}); err != nil {
				return err
			}
		}
	}

	outcome, _ := g.Winner()
	points := [2]game.Breakdown{g.Points(0), g.Points(1)}
	sum.Matches++
	if outcome.Draw {
		sum.Draws++
	} else {
		sum.Wins[outcome.Winner]++
	}
	for i, b := range points {
		sum.TotalPoints[i] += b.Total()
	}

	return r.emit(protocol.TypeGameOver, protocol.GameOverPayload{
		GameID:  g.ID,
		Outcome: outcome,
		Points:  points,
		Payoffs: g.Payoffs(),
	})
}

func (r *Runner) emit(msgType string, payload interface{}) error {
	if r.out == nil {
		return nil
	}
	msg, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", msgType, err)
	}
	msg = append(msg, '\n')
	_, err = r.out.Write(msg)
	return err
}

func scopaSums(g *game.Game) [2]int {
	return [2]int{g.Players[0].ScopaSum, g.Players[1].ScopaSum}
}
