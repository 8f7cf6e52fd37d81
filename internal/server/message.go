package server

import (
	"encoding/json"
	"time"

	"github.com/lox/pokerodds/equity"
	"github.com/lox/pokerodds/poker"
)

// MessageType represents a WebSocket message type with type safety
type MessageType string

const (
	// Client to server requests
	MessageTypeOdds        MessageType = "odds"
	MessageTypeBestHand    MessageType = "best_hand"
	MessageTypePercentages MessageType = "percentages"

	// Server to client responses
	MessageTypeOddsResult        MessageType = "odds_result"
	MessageTypeBestHandResult    MessageType = "best_hand_result"
	MessageTypePercentagesResult MessageType = "percentages_result"
	MessageTypeError             MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message stamped with now
func NewMessage(messageType MessageType, data any, now time.Time) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: now,
	}, nil
}

// Client → Server Messages

// OddsRequest asks for the odds of each hole. Method defaults to hybrid;
// SampleSize and Threshold default to the server's configuration.
type OddsRequest struct {
	Holes      []equity.Hole `json:"holes"`
	Board      []poker.Card  `json:"board,omitempty"`
	Method     string        `json:"method,omitempty"`
	SampleSize int           `json:"sampleSize,omitempty"`
	Threshold  int           `json:"threshold,omitempty"`
}

// BestHandRequest asks for the best hand that can be made from cards
type BestHandRequest struct {
	Cards []poker.Card `json:"cards"`
}

// PercentagesRequest asks for the final category distribution of a hole
type PercentagesRequest struct {
	Hole  equity.Hole  `json:"hole"`
	Board []poker.Card `json:"board,omitempty"`
}

// Server → Client Messages

type OddsResultData struct {
	Method    equity.Method   `json:"method"`
	Results   []equity.Result `json:"results"`
	ElapsedMs int64           `json:"elapsedMs"`
}

type BestHandResultData struct {
	Category    poker.Category `json:"category"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Cards       []poker.Card   `json:"cards"`
	Kickers     []poker.Card   `json:"kickers"`
}

type PercentagesResultData struct {
	Percentages equity.Distribution `json:"percentages"`
	ElapsedMs   int64               `json:"elapsedMs"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
