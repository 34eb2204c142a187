// Package vectorspace implements a smoothed TF-IDF vector space over
// normalized phrases.
//
// Weights follow idf(t) = ln((1+N)/(1+df(t))) + 1 and w(t, p) = count(t, p) * idf(t).
// Every vector is scaled to unit length, so the dot product of two vectors is
// their cosine similarity.
package vectorspace

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/viterin/vek"

	"github.com/nmchat/nmbot/pkg/models"
)

// Vector is a dense vector with one dimension per vocabulary term.
type Vector []float64

// IsZero reports whether every component of v is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Index is a fitted vector space. It is immutable and safe for concurrent use.
type Index struct {
	vocabulary map[string]int
	terms      []string
	idf        []float64
	rows       []Vector
}

// Fit builds the vocabulary and IDF weights from corpus, whose entries are
// already-normalized phrases, and projects every phrase. A corpus without a
// single token is rejected with models.ErrDegenerateCorpus.
func Fit(corpus []string) (*Index, error) {
	df := make(map[string]int)
	docs := make([][]string, len(corpus))
	for i, phrase := range corpus {
		docs[i] = strings.Fields(phrase)
		seen := make(map[string]struct{}, len(docs[i]))
		for _, term := range docs[i] {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return nil, fmt.Errorf("%w: %d phrases", models.ErrDegenerateCorpus, len(corpus))
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(corpus))
	idx := &Index{
		vocabulary: make(map[string]int, len(terms)),
		terms:      terms,
		idf:        make([]float64, len(terms)),
		rows:       make([]Vector, len(corpus)),
	}
	for i, term := range terms {
		idx.vocabulary[term] = i
		idx.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	for i, doc := range docs {
		idx.rows[i] = idx.project(doc)
	}
	return idx, nil
}

// Transform projects already-normalized text into the fitted space. Terms
// outside the vocabulary are ignored; if none are known the zero vector is
// returned.
func (idx *Index) Transform(text string) Vector {
	return idx.project(strings.Fields(text))
}

func (idx *Index) project(tokens []string) Vector {
	v := make(Vector, len(idx.terms))
	for _, tok := range tokens {
		if dim, ok := idx.vocabulary[tok]; ok {
			v[dim] += idx.idf[dim]
		}
	}
	if norm := vek.Norm(v); norm > 0 {
		vek.DivNumber_Inplace(v, norm)
	}
	return v
}

// Dim returns the number of dimensions.
func (idx *Index) Dim() int {
	return len(idx.terms)
}

// Len returns the number of fitted rows.
func (idx *Index) Len() int {
	return len(idx.rows)
}

// Row returns the fitted vector of phrase i. The result must not be modified.
func (idx *Index) Row(i int) Vector {
	return idx.rows[i]
}

// Vocabulary returns the terms in dimension order.
func (idx *Index) Vocabulary() []string {
	return append([]string(nil), idx.terms...)
}

// IDF returns the inverse document frequency of term and whether it is known.
func (idx *Index) IDF(term string) (float64, bool) {
	dim, ok := idx.vocabulary[term]
	if !ok {
		return 0, false
	}
	return idx.idf[dim], true
}

// Dot returns the dot product of two unit vectors, which is their cosine
// similarity. It is 0 when either vector is zero, never NaN. Vectors from
// different spaces are a programming error and panic.
func Dot(a, b Vector) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vectorspace: dimension mismatch %d != %d", len(a), len(b)))
	}
	if a.IsZero() || b.IsZero() {
		return 0
	}
	return vek.Dot(a, b)
}
