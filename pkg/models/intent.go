package models

import (
	"fmt"
	"slices"
)

// Intent is a labeled category of user request with its trigger phrases and
// canned replies.
type Intent struct {
	ID        string   `json:"id"        yaml:"id"`
	Patterns  []string `json:"patterns"  yaml:"patterns"`
	Responses []string `json:"responses" yaml:"responses"`
}

// Corpus is an ordered, read-only collection of intents. Order is significant:
// it fixes the order of training rows and therefore tie-breaking.
type Corpus struct {
	intents []Intent
	byID    map[string]int
}

// NewCorpus validates intents and returns a Corpus holding private copies.
func NewCorpus(intents []Intent) (*Corpus, error) {
	if len(intents) == 0 {
		return nil, fmt.Errorf("%w: no intents defined", ErrInvalidCorpus)
	}
	c := &Corpus{
		intents: make([]Intent, 0, len(intents)),
		byID:    make(map[string]int, len(intents)),
	}
	for _, in := range intents {
		switch {
		case in.ID == "":
			return nil, fmt.Errorf("%w: intent with empty id", ErrInvalidCorpus)
		case len(in.Patterns) == 0:
			return nil, fmt.Errorf("%w: intent %q has no patterns", ErrInvalidCorpus, in.ID)
		case len(in.Responses) == 0:
			return nil, fmt.Errorf("%w: intent %q has no responses", ErrInvalidCorpus, in.ID)
		}
		if _, dup := c.byID[in.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate intent %q", ErrInvalidCorpus, in.ID)
		}
		c.byID[in.ID] = len(c.intents)
		c.intents = append(c.intents, in.Clone())
	}
	return c, nil
}

// Clone returns a deep copy of the intent.
func (i Intent) Clone() Intent {
	return Intent{
		ID:        i.ID,
		Patterns:  slices.Clone(i.Patterns),
		Responses: slices.Clone(i.Responses),
	}
}

// Get returns the intent registered under id.
func (c *Corpus) Get(id string) (Intent, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Intent{}, false
	}
	return c.intents[idx].Clone(), true
}

// Intents returns copies of all intents in corpus order.
func (c *Corpus) Intents() []Intent {
	out := make([]Intent, len(c.intents))
	for i, in := range c.intents {
		out[i] = in.Clone()
	}
	return out
}

// Len returns the number of intents.
func (c *Corpus) Len() int {
	return len(c.intents)
}

// PatternCount returns the total number of trigger phrases across all intents.
func (c *Corpus) PatternCount() int {
	n := 0
	for _, in := range c.intents {
		n += len(in.Patterns)
	}
	return n
}

// ResponsesFor returns the response set of the intent id, or nil.
func (c *Corpus) ResponsesFor(id string) []string {
	idx, ok := c.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(c.intents[idx].Responses)
}
