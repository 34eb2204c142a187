package nlp

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/blugelabs/bluge/analysis"
	"gopkg.in/yaml.v3"

	"github.com/nmchat/nmbot/config"
	"github.com/nmchat/nmbot/internal"
	"github.com/nmchat/nmbot/pkg/models"
)

var log = internal.GetLogger()

//go:embed data/stopwords_en.txt
var embeddedStopwords []byte

//go:embed data/lemma_invariants.txt
var embeddedInvariants []byte

//go:embed data/lemma_exceptions.yaml
var embeddedExceptions []byte

// Resources holds the linguistic data the Normalizer needs. It is loaded once
// at startup and read-only afterwards.
type Resources struct {
	Stopwords  analysis.TokenMap
	Lemmatizer *Lemmatizer
}

// LoadResources loads the stopword set and the lemma tables, using files named
// in cfg where set and the embedded defaults otherwise. An unreadable file or
// an empty stopword set wraps models.ErrMissingLinguisticResource.
func LoadResources(cfg config.NLPConfig) (*Resources, error) {
	stopwords, err := loadTokenMap("stopwords", cfg.StopwordsPath, embeddedStopwords)
	if err != nil {
		return nil, err
	}
	if len(stopwords) == 0 {
		return nil, fmt.Errorf("%w: stopword set is empty", models.ErrMissingLinguisticResource)
	}

	invariants, err := loadTokenMap("lemma invariants", cfg.LemmaInvariantsPath, embeddedInvariants)
	if err != nil {
		return nil, err
	}

	exceptions, err := loadExceptions(cfg.LemmaExceptionsPath)
	if err != nil {
		return nil, err
	}

	log.Debugf(
		"loaded linguistic resources: %d stopwords, %d lemma exceptions, %d invariants",
		len(stopwords), len(exceptions), len(invariants),
	)

	return &Resources{
		Stopwords:  stopwords,
		Lemmatizer: NewLemmatizer(exceptions, invariants),
	}, nil
}

// DefaultResources returns the embedded resources.
func DefaultResources() (*Resources, error) {
	return LoadResources(config.NLPConfig{})
}

// loadTokenMap reads one word per line from path, or from embedded when path
// is empty. Only file reads can fail; an empty embedded list shows up as an
// empty map.
func loadTokenMap(name, path string, embedded []byte) (analysis.TokenMap, error) {
	tm := analysis.NewTokenMap()
	if path == "" {
		tm.LoadBytes(embedded)
		return tm, nil
	}
	if err := tm.LoadFile(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", models.ErrMissingLinguisticResource, name, err)
	}
	return tm, nil
}

func loadExceptions(path string) (map[string]string, error) {
	data := embeddedExceptions
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: lemma exceptions: %w", models.ErrMissingLinguisticResource, err)
		}
	}

	exceptions := make(map[string]string)
	if err := yaml.Unmarshal(data, &exceptions); err != nil {
		return nil, fmt.Errorf("%w: lemma exceptions: %w", models.ErrMissingLinguisticResource, err)
	}
	return exceptions, nil
}
