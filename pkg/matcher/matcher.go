// Package matcher classifies messages by nearest neighbour over the trained
// trigger phrases.
package matcher

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/nmchat/nmbot/pkg/models"
	"github.com/nmchat/nmbot/pkg/vectorspace"
)

// DefaultThreshold is the score a best match must strictly exceed.
const DefaultThreshold = 0.3

type Normalizer interface {
	Normalize(text string) string
}

// Space is a fitted vector space with one row per trained phrase.
type Space interface {
	Transform(text string) vectorspace.Vector
	Row(i int) vectorspace.Vector
	Len() int
}

// Matcher is immutable and safe for concurrent use.
type Matcher struct {
	normalizer Normalizer
	space      Space
	labels     []string
	phrases    []string
	threshold  float64
}

// New returns a Matcher over space, where labels[i] and phrases[i] describe row i.
func New(n Normalizer, space Space, labels, phrases []string, threshold float64) (*Matcher, error) {
	if len(labels) != space.Len() || len(phrases) != space.Len() {
		return nil, fmt.Errorf(
			"matcher: %d labels and %d phrases for %d rows",
			len(labels), len(phrases), space.Len(),
		)
	}
	return &Matcher{
		normalizer: n,
		space:      space,
		labels:     append([]string(nil), labels...),
		phrases:    append([]string(nil), phrases...),
		threshold:  threshold,
	}, nil
}

// Threshold returns the exclusive score threshold.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Match returns the intent of the best scoring row if its score is strictly
// greater than the threshold.
func (m *Matcher) Match(raw string) (string, bool) {
	_, best := m.Best(raw)
	return best.Intent, best.Matched
}

// Best normalizes raw and returns its normalized form and the best scoring
// row. Exact ties go to the lowest row. When the best row does not clear the
// threshold the returned Match has Matched false and an empty Intent.
func (m *Matcher) Best(raw string) (string, models.Match) {
	normalized := m.normalizer.Normalize(raw)
	return normalized, m.best(m.space.Transform(normalized))
}

func (m *Matcher) best(query vectorspace.Vector) models.Match {
	bestRow, bestScore := -1, 0.0
	for i := 0; i < m.space.Len(); i++ {
		score := vectorspace.Dot(query, m.space.Row(i))
		if bestRow < 0 || score > bestScore {
			bestRow, bestScore = i, score
		}
	}
	if bestRow < 0 || bestScore <= m.threshold {
		return models.Match{Row: bestRow, Score: bestScore}
	}
	return m.match(bestRow, bestScore)
}

// Rank returns the normalized form of raw and its n best rows, highest score
// first and lowest row first among equal scores. n <= 0 ranks every row.
func (m *Matcher) Rank(raw string, n int) (string, []models.Match) {
	normalized := m.normalizer.Normalize(raw)
	query := m.space.Transform(normalized)

	matches := lo.Times(m.space.Len(), func(i int) models.Match {
		return m.match(i, vectorspace.Dot(query, m.space.Row(i)))
	})
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if n > 0 && n < len(matches) {
		matches = matches[:n]
	}
	return normalized, matches
}

func (m *Matcher) match(row int, score float64) models.Match {
	return models.Match{
		Intent:  m.labels[row],
		Phrase:  m.phrases[row],
		Row:     row,
		Score:   score,
		Matched: score > m.threshold,
	}
}
