package corpus

import "github.com/nmchat/nmbot/pkg/models"

// Normalizer reduces raw text to normalized, space separated tokens.
type Normalizer interface {
	Normalize(text string) string
}

// TrainingSet is the corpus flattened into parallel sequences, one row per
// trigger phrase: Phrases[i] is the normalized phrase, Patterns[i] the phrase
// as written and Labels[i] the owning intent.
type TrainingSet struct {
	Labels   []string
	Patterns []string
	Phrases  []string
}

// Flatten normalizes every trigger phrase of c in corpus order.
func Flatten(c *models.Corpus, n Normalizer) TrainingSet {
	size := c.PatternCount()
	ts := TrainingSet{
		Labels:   make([]string, 0, size),
		Patterns: make([]string, 0, size),
		Phrases:  make([]string, 0, size),
	}
	for _, in := range c.Intents() {
		for _, p := range in.Patterns {
			phrase := n.Normalize(p)
			if phrase == "" {
				log.Warnf("pattern %q of intent %q normalizes to nothing and can never match", p, in.ID)
			}
			ts.Labels = append(ts.Labels, in.ID)
			ts.Patterns = append(ts.Patterns, p)
			ts.Phrases = append(ts.Phrases, phrase)
		}
	}
	return ts
}

// Len returns the number of rows.
func (ts TrainingSet) Len() int {
	return len(ts.Labels)
}
