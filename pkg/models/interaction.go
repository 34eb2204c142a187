package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Interaction is one classified message as recorded by the interaction log.
// The log is write-only from the classifier's point of view.
type Interaction struct {
	UUID       uuid.UUID `json:"uuid"`
	CreatedAt  time.Time `json:"created_at"`
	Message    string    `json:"message"`
	Normalized string    `json:"normalized"`
	Intent     string    `json:"intent,omitempty"`
	Score      float64   `json:"score"`
	Matched    bool      `json:"matched"`
	Response   string    `json:"response"`
	Language   string    `json:"language,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
}

// InteractionFilter narrows a listing of the interaction log.
type InteractionFilter struct {
	Limit         int
	UnmatchedOnly bool
}

// InteractionStore persists interactions for later review.
type InteractionStore interface {
	PutInteraction(ctx context.Context, interaction *Interaction) error
	// ListInteractions returns interactions newest first.
	ListInteractions(ctx context.Context, filter InteractionFilter) ([]Interaction, error)
	Close() error
}
