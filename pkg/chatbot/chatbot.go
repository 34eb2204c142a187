// Package chatbot wires the normalizer, vector space, matcher and responder
// into a single immutable bot built once at startup.
package chatbot

import (
	"fmt"
	"strings"

	"github.com/nmchat/nmbot/internal"
	"github.com/nmchat/nmbot/pkg/corpus"
	"github.com/nmchat/nmbot/pkg/matcher"
	"github.com/nmchat/nmbot/pkg/models"
	"github.com/nmchat/nmbot/pkg/nlp"
	"github.com/nmchat/nmbot/pkg/responder"
	"github.com/nmchat/nmbot/pkg/vectorspace"
)

var log = internal.GetLogger()

var _ models.ChatBot = (*Bot)(nil)

type Options struct {
	// Threshold a best score must strictly exceed. Zero means matcher.DefaultThreshold.
	Threshold float64
	// Source of randomness for response selection. Nil means a time seeded source.
	Source responder.Source
}

// Bot is immutable after New and safe for concurrent use.
type Bot struct {
	corpus      *models.Corpus
	defaults    []string
	suggestions []string
	normalizer  *nlp.Normalizer
	index       *vectorspace.Index
	matcher     *matcher.Matcher
	selector    *responder.Selector
}

// New normalizes and fits every trigger phrase of def. It fails with
// models.ErrDegenerateCorpus if no phrase has a token left after normalization.
func New(res *nlp.Resources, def *corpus.Definition, opts Options) (*Bot, error) {
	if res == nil || def == nil || def.Corpus == nil {
		return nil, fmt.Errorf("chatbot: resources and corpus are required")
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = matcher.DefaultThreshold
	}

	normalizer := nlp.NewNormalizer(res)
	ts := corpus.Flatten(def.Corpus, normalizer)

	index, err := vectorspace.Fit(ts.Phrases)
	if err != nil {
		return nil, fmt.Errorf("failed to fit vector space: %w", err)
	}

	m, err := matcher.New(normalizer, index, ts.Labels, ts.Patterns, threshold)
	if err != nil {
		return nil, err
	}

	log.Infof(
		"trained on %d intents, %d phrases, %d terms (threshold %.2f)",
		def.Corpus.Len(), ts.Len(), index.Dim(), threshold,
	)

	return &Bot{
		corpus:      def.Corpus,
		defaults:    append([]string(nil), def.DefaultResponses...),
		suggestions: append([]string(nil), def.Suggestions...),
		normalizer:  normalizer,
		index:       index,
		matcher:     m,
		selector:    responder.New(opts.Source),
	}, nil
}

// Default builds a Bot from the embedded resources and corpus.
func Default(opts Options) (*Bot, error) {
	res, err := nlp.DefaultResources()
	if err != nil {
		return nil, err
	}
	def, err := corpus.Default()
	if err != nil {
		return nil, err
	}
	return New(res, def, opts)
}

func (b *Bot) Handle(message string) string {
	return b.Reply(message).Response
}

// Reply classifies message and selects a response. Blank messages get
// models.EmptyMessagePrompt without being classified.
func (b *Bot) Reply(message string) models.Reply {
	if strings.TrimSpace(message) == "" {
		return models.Reply{Response: models.EmptyMessagePrompt, Prompted: true}
	}

	normalized, best := b.matcher.Best(message)
	reply := models.Reply{
		Intent:     best.Intent,
		Score:      best.Score,
		Matched:    best.Matched,
		Normalized: normalized,
	}
	reply.Response = b.selector.Respond(b.corpus.ResponsesFor(best.Intent), best.Matched, b.defaults)
	log.Debugf("message %q normalized to %q: intent=%q score=%.4f", message, normalized, best.Intent, best.Score)
	return reply
}

func (b *Bot) Rank(message string, n int) (string, []models.Match) {
	return b.matcher.Rank(message, n)
}

func (b *Bot) Corpus() *models.Corpus {
	return b.corpus
}

func (b *Bot) DefaultResponses() []string {
	return append([]string(nil), b.defaults...)
}

// Suggestions returns the quick options a client may show before the first message.
func (b *Bot) Suggestions() []string {
	return append([]string(nil), b.suggestions...)
}

// Threshold returns the exclusive match threshold.
func (b *Bot) Threshold() float64 {
	return b.matcher.Threshold()
}

// Vocabulary returns the fitted terms in dimension order.
func (b *Bot) Vocabulary() []string {
	return b.index.Vocabulary()
}
