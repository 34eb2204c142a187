// Package corpus provides the pattern corpus the bot is trained on: the
// compiled-in knowledge base, optional YAML corpus files, and the flattened
// training set derived from either.
package corpus

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/nmchat/nmbot/internal"
	"github.com/nmchat/nmbot/pkg/models"
)

var log = internal.GetLogger()

// Definition is everything the bot needs to know about its intents.
type Definition struct {
	Corpus           *models.Corpus
	DefaultResponses []string
	Suggestions      []string
}

// fileFormat is the on-disk layout of a corpus file. Intents are a list so
// that their order, which decides ties, survives the round trip.
type fileFormat struct {
	Intents          []models.Intent `yaml:"intents"`
	DefaultResponses []string        `yaml:"default_responses"`
	Suggestions      []string        `yaml:"suggestions"`
}

// Default returns the compiled-in definition.
func Default() (*Definition, error) {
	return newDefinition(DefaultIntents(), DefaultResponses(), DefaultSuggestions())
}

// Load reads a corpus file. An empty path returns the compiled-in definition.
func Load(path string) (*Definition, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading corpus file: %w", models.ErrInvalidCorpus, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded corpus file %s with %d intents", path, def.Corpus.Len())
	return def, nil
}

// Parse decodes a YAML corpus. Missing default responses or suggestions fall
// back to the compiled-in ones.
func Parse(data []byte) (*Definition, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decoding corpus file: %w", models.ErrInvalidCorpus, err)
	}
	return newDefinition(
		f.Intents,
		lo.Ternary(len(f.DefaultResponses) > 0, f.DefaultResponses, DefaultResponses()),
		lo.Ternary(len(f.Suggestions) > 0, f.Suggestions, DefaultSuggestions()),
	)
}

// Marshal encodes a definition in the corpus file format.
func Marshal(def *Definition) ([]byte, error) {
	return yaml.Marshal(fileFormat{
		Intents:          def.Corpus.Intents(),
		DefaultResponses: def.DefaultResponses,
		Suggestions:      def.Suggestions,
	})
}

func newDefinition(intents []models.Intent, defaults, suggestions []string) (*Definition, error) {
	blank := func(s string) bool { return strings.TrimSpace(s) == "" }

	for _, in := range intents {
		if lo.SomeBy(in.Patterns, blank) {
			return nil, fmt.Errorf("%w: intent %q has a blank pattern", models.ErrInvalidCorpus, in.ID)
		}
		if lo.SomeBy(in.Responses, blank) {
			return nil, fmt.Errorf("%w: intent %q has a blank response", models.ErrInvalidCorpus, in.ID)
		}
	}
	if len(defaults) == 0 || lo.SomeBy(defaults, blank) {
		return nil, fmt.Errorf("%w: default responses must be non-empty strings", models.ErrInvalidCorpus)
	}

	c, err := models.NewCorpus(intents)
	if err != nil {
		return nil, err
	}
	return &Definition{
		Corpus:           c,
		DefaultResponses: append([]string(nil), defaults...),
		Suggestions:      append([]string(nil), suggestions...),
	}, nil
}
