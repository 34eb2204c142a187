package nlp

import (
	"strings"

	"github.com/blugelabs/bluge/analysis"
)

// Lemmatizer reduces English nouns to their dictionary base form using an
// exception table for irregular plurals followed by suffix detachment rules.
// Words the rules do not recognise as plural nouns are returned unchanged.
type Lemmatizer struct {
	exceptions map[string]string
	invariants analysis.TokenMap
}

// NewLemmatizer returns a Lemmatizer. Both tables are used read-only.
func NewLemmatizer(exceptions map[string]string, invariants analysis.TokenMap) *Lemmatizer {
	if exceptions == nil {
		exceptions = map[string]string{}
	}
	if invariants == nil {
		invariants = analysis.NewTokenMap()
	}
	return &Lemmatizer{exceptions: exceptions, invariants: invariants}
}

type detachment struct {
	suffix  string
	replace string
}

// Order matters: the first matching suffix wins.
var nounDetachments = []detachment{
	{"sses", "ss"},
	{"ies", "y"},
	{"xes", "x"},
	{"zzes", "zz"},
	{"shes", "sh"},
	{"tches", "tch"},
	{"ches", "ch"},
	{"s", ""},
}

// Lemmatize returns the base form of a lowercase word. Lemmatize is
// idempotent: the base form of a base form is itself.
func (l *Lemmatizer) Lemmatize(word string) string {
	if base, ok := l.exceptions[word]; ok {
		return base
	}
	if _, ok := l.invariants[word]; ok {
		return word
	}
	if len(word) <= 3 || !strings.HasSuffix(word, "s") {
		return word
	}
	for _, keep := range []string{"ss", "us", "is"} {
		if strings.HasSuffix(word, keep) {
			return word
		}
	}

	for _, d := range nounDetachments {
		if !strings.HasSuffix(word, d.suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, d.suffix)
		switch d.suffix {
		case "ies":
			// ties -> tie, lies -> lie
			if len(word) <= 4 {
				return stem + "ie"
			}
		case "ches":
			// headaches -> headache, but coaches -> coach
			if strings.HasSuffix(stem, "a") && !strings.HasSuffix(stem, "oa") {
				return strings.TrimSuffix(word, "s")
			}
		}
		return l.irregular(stem + d.replace)
	}
	return word
}

// irregular maps a detached form that is itself an irregular plural ("mens" -> "men").
func (l *Lemmatizer) irregular(word string) string {
	if base, ok := l.exceptions[word]; ok {
		return base
	}
	return word
}

// lemmaFilter is a bluge token filter that replaces each term by its lemma.
type lemmaFilter struct {
	lemmatizer *Lemmatizer
}

func (f *lemmaFilter) Filter(input analysis.TokenStream) analysis.TokenStream {
	for _, token := range input {
		lemma := f.lemmatizer.Lemmatize(string(token.Term))
		if lemma != string(token.Term) {
			token.Term = []byte(lemma)
		}
	}
	return input
}
