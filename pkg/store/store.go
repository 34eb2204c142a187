// Package store holds what the interaction log backends share.
package store

import (
	"github.com/nmchat/nmbot/pkg/models"
)

// ClampLimit bounds a requested listing size to [1, ceiling]. A non-positive
// request means ceiling.
func ClampLimit(requested, ceiling int) int {
	if requested <= 0 || requested > ceiling {
		return ceiling
	}
	return requested
}

// Keep reports whether interaction passes filter.
func Keep(interaction *models.Interaction, filter models.InteractionFilter) bool {
	return !filter.UnmatchedOnly || !interaction.Matched
}
