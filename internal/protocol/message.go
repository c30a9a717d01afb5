package protocol

import (
	"encoding/json"

	"cirulla/internal/game"
	"cirulla/internal/shared"
)

// Message is one line of a match transcript.
type Message struct {
	Type    string          `json:"type"`              // e.g. "match_start", "step", "game_over"
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, shape depends on Type
}

const (
	TypeMatchStart = "match_start"
	TypeStep       = "step"
	TypeStepBack   = "step_back"
	TypeGameOver   = "game_over"
)

type MatchStartPayload struct {
	GameID      string        `json:"game_id"`
	Match       int           `json:"match"`
	FirstPlayer int           `json:"first_player"`
	Board       []shared.Card `json:"board"`
	ScopaSums   [2]int        `json:"scopa_sums"`
}

type StepPayload struct {
	GameID     string        `json:"game_id"`
	Player     int           `json:"player"`
	Card       shared.Card   `json:"card"`
	Board      []shared.Card `json:"board"`
	ScopaSums  [2]int        `json:"scopa_sums"`
	NextPlayer int           `json:"next_player"`
}

type StepBackPayload struct {
	GameID  string `json:"game_id"`
	Undone  int    `json:"undone"`
	History int    `json:"history"`
}

type GameOverPayload struct {
	GameID  string            `json:"game_id"`
	Outcome game.Outcome      `json:"outcome"`
	Points  [2]game.Breakdown `json:"points"`
	Payoffs [2]int            `json:"payoffs"`
}

// NewMessage wraps a payload in a typed envelope and encodes it.
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}
