// Package nlp turns raw user text into the normalized form the vector space is
// trained on: lowercase, alphabetic, stopword-free, lemmatized tokens joined by
// single spaces.
package nlp

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/token"
	"github.com/blugelabs/bluge/analysis/tokenizer"
)

// Normalizer is safe for concurrent use once constructed.
type Normalizer struct {
	analyzer *analysis.Analyzer
}

// NewNormalizer builds the analysis chain
// unicode words -> lowercase -> apostrophe split -> alphabetic only -> stopwords -> lemma -> stopwords.
// Apostrophes are token boundaries, so "product's" yields "product" and "s" and
// the contraction pieces ("don", "t", "ll") fall to the stopword set.
// Stopwords are filtered again after lemmatization so a lemma that is itself a
// stopword ("ins" -> "in") never survives, which keeps Normalize idempotent.
func NewNormalizer(res *Resources) *Normalizer {
	stop := token.NewStopTokensFilter(res.Stopwords)
	return &Normalizer{
		analyzer: &analysis.Analyzer{
			Tokenizer: tokenizer.NewUnicodeTokenizer(),
			TokenFilters: []analysis.TokenFilter{
				token.NewLowerCaseFilter(),
				apostropheFilter{},
				alphaFilter{},
				stop,
				&lemmaFilter{lemmatizer: res.Lemmatizer},
				stop,
			},
		},
	}
}

// Tokens returns the normalized tokens of text in order.
func (n *Normalizer) Tokens(text string) []string {
	if text == "" {
		return nil
	}
	stream := n.analyzer.Analyze([]byte(strings.ToLower(text)))
	tokens := make([]string, 0, len(stream))
	for _, t := range stream {
		tokens = append(tokens, string(t.Term))
	}
	return tokens
}

// Normalize returns the normalized tokens of text joined by single spaces.
func (n *Normalizer) Normalize(text string) string {
	return strings.Join(n.Tokens(text), " ")
}

// apostropheFilter splits tokens on ASCII and typographic apostrophes, which
// the word segmenter keeps inside words.
type apostropheFilter struct{}

func (apostropheFilter) Filter(input analysis.TokenStream) analysis.TokenStream {
	rv := make(analysis.TokenStream, 0, len(input))
	for _, t := range input {
		if !bytes.ContainsAny(t.Term, "'\u2019") {
			rv = append(rv, t)
			continue
		}
		start := -1
		for i, r := range string(t.Term) {
			if isApostrophe(r) {
				rv = appendPiece(rv, t, start, i)
				start = -1
			} else if start < 0 {
				start = i
			}
		}
		rv = appendPiece(rv, t, start, len(t.Term))
	}
	return rv
}

func appendPiece(rv analysis.TokenStream, t *analysis.Token, from, to int) analysis.TokenStream {
	if from < 0 || from >= to {
		return rv
	}
	piece := *t
	piece.Term = append([]byte(nil), t.Term[from:to]...)
	piece.Start = t.Start + from
	piece.End = t.Start + to
	return append(rv, &piece)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '\u2019'
}

// alphaFilter drops every token that contains a non-letter rune.
type alphaFilter struct{}

func (alphaFilter) Filter(input analysis.TokenStream) analysis.TokenStream {
	rv := input[:0]
	for _, t := range input {
		if isAlpha(t.Term) {
			rv = append(rv, t)
		}
	}
	return rv
}

func isAlpha(term []byte) bool {
	if len(term) == 0 {
		return false
	}
	for len(term) > 0 {
		r, size := utf8.DecodeRune(term)
		if r == utf8.RuneError || !unicode.IsLetter(r) {
			return false
		}
		term = term[size:]
	}
	return true
}
