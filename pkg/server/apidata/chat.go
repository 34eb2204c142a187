// Package apidata holds the request and response bodies of the HTTP API.
package apidata

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the body of POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatV1Response is the body of POST /api/v1/chat.
type ChatV1Response struct {
	Response string  `json:"response"`
	Intent   string  `json:"intent,omitempty"`
	Score    float64 `json:"score"`
	Matched  bool    `json:"matched"`
}

type ClassifyRequest struct {
	Message string `json:"message" validate:"required"`
	// Limit defaults to DefaultClassifyLimit
	Limit int `json:"limit" validate:"gte=0,lte=50"`
}

const DefaultClassifyLimit = 5

type ClassifyResponse struct {
	Normalized string          `json:"normalized"`
	Threshold  float64         `json:"threshold"`
	Matches    []ClassifyMatch `json:"matches"`
}

type ClassifyMatch struct {
	Intent  string  `json:"intent"`
	Phrase  string  `json:"phrase"`
	Score   float64 `json:"score"`
	Matched bool    `json:"matched"`
}

type Intent struct {
	ID        string   `json:"id"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

type IntentsResponse struct {
	Intents          []Intent `json:"intents"`
	DefaultResponses []string `json:"default_responses"`
	Suggestions      []string `json:"suggestions"`
}

type Interaction struct {
	UUID      uuid.UUID `json:"uuid"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message"`
	Intent    string    `json:"intent,omitempty"`
	Score     float64   `json:"score"`
	Matched   bool      `json:"matched"`
	Response  string    `json:"response"`
	Language  string    `json:"language,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}
