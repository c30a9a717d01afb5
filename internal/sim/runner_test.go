package sim

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"testing"

	"cirulla/internal/config"
	"cirulla/internal/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRunPlaysEveryMatch(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(rand.New(rand.NewPCG(1, 2)),
		config.GameConfig{AllowStepBack: true},
		config.SimConfig{Games: 5, StepBackEvery: 3, Transcript: true},
		&out, zaptest.NewLogger(t))

	sum, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, sum.Matches)
	assert.Equal(t, 5, sum.Wins[0]+sum.Wins[1]+sum.Draws)
	assert.Positive(t, sum.StepBacks)
	// Every undone step is replayed.
	assert.Equal(t, 5*36+sum.StepBacks, sum.Steps)

	counts := map[string]int{}
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var msg protocol.Message
		require.NoError(t, json.Unmarshal(sc.Bytes(), &msg))
		counts[msg.Type]++
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, 5, counts[protocol.TypeMatchStart])
	assert.Equal(t, 5, counts[protocol.TypeGameOver])
	assert.Equal(t, sum.Steps, counts[protocol.TypeStep])
	assert.Equal(t, sum.StepBacks, counts[protocol.TypeStepBack])
}

func TestRunWithoutTranscript(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(rand.New(rand.NewPCG(3, 4)),
		config.GameConfig{},
		config.SimConfig{Games: 2},
		&out, zaptest.NewLogger(t))

	sum, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Matches)
	assert.Zero(t, sum.StepBacks)
	assert.Zero(t, out.Len())
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(rand.New(rand.NewPCG(5, 6)),
		config.GameConfig{}, config.SimConfig{Games: 3}, nil, zaptest.NewLogger(t))

	sum, err := r.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sum.Matches)
}

func TestAveragePoints(t *testing.T) {
	assert.Equal(t, [2]float64{}, Summary{}.AveragePoints())
	assert.Equal(t, [2]float64{2.5, 1}, Summary{Matches: 2, TotalPoints: [2]int{5, 2}}.AveragePoints())
}
