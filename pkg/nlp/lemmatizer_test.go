package nlp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmchat/nmbot/config"
	"github.com/nmchat/nmbot/pkg/models"
)

func TestLemmatize(t *testing.T) {
	res, err := DefaultResources()
	require.NoError(t, err)
	l := res.Lemmatizer

	cases := map[string]string{
		"orders":     "order",
		"deliveries": "delivery",
		"ties":       "tie",
		"glasses":    "glass",
		"addresses":  "address",
		"boxes":      "box",
		"buzzes":     "buzz",
		"wishes":     "wish",
		"watches":    "watch",
		"churches":   "church",
		"headaches":  "headache",
		"coaches":    "coach",
		"children":   "child",
		"women":      "woman",
		"mens":       "man",
		"data":       "datum",
		"status":     "status",
		"thanks":     "thanks",
		"news":       "news",
		"analysis":   "analysis",
		"class":      "class",
		"bus":        "bus",
		"greetings":  "greeting",
		"ordering":   "ordering",
		"hello":      "hello",
	}
	for in, want := range cases {
		got := l.Lemmatize(in)
		assert.Equal(t, want, got, "lemma of %q", in)
		assert.Equal(t, got, l.Lemmatize(got), "lemma of lemma %q", got)
	}
}

func TestNewLemmatizerNilTables(t *testing.T) {
	l := NewLemmatizer(nil, nil)
	assert.Equal(t, "product", l.Lemmatize("products"))
	assert.Equal(t, "child", l.Lemmatize("child"))
}

func TestLoadResources(t *testing.T) {
	t.Run("embedded defaults", func(t *testing.T) {
		res, err := DefaultResources()
		require.NoError(t, err)
		assert.Contains(t, res.Stopwords, "the")
		assert.Contains(t, res.Stopwords, "you")
		assert.NotContains(t, res.Stopwords, "hello")
	})

	t.Run("files", func(t *testing.T) {
		dir := t.TempDir()
		stop := filepath.Join(dir, "stop.txt")
		exc := filepath.Join(dir, "exc.yaml")
		inv := filepath.Join(dir, "inv.txt")
		require.NoError(t, os.WriteFile(stop, []byte("# custom\nhello hi\n"), 0o600))
		require.NoError(t, os.WriteFile(exc, []byte("octopi: octopus\n"), 0o600))
		require.NoError(t, os.WriteFile(inv, []byte("lens\n"), 0o600))

		res, err := LoadResources(config.NLPConfig{
			StopwordsPath:       stop,
			LemmaExceptionsPath: exc,
			LemmaInvariantsPath: inv,
		})
		require.NoError(t, err)
		assert.Len(t, res.Stopwords, 2)
		assert.Equal(t, "octopus", res.Lemmatizer.Lemmatize("octopi"))
		assert.Equal(t, "lens", res.Lemmatizer.Lemmatize("lens"))

		n := NewNormalizer(res)
		assert.Equal(t, "there", n.Normalize("hello there"))
	})

	t.Run("missing stopword file", func(t *testing.T) {
		_, err := LoadResources(config.NLPConfig{
			StopwordsPath: filepath.Join(t.TempDir(), "missing.txt"),
		})
		assert.ErrorIs(t, err, models.ErrMissingLinguisticResource)
	})

	t.Run("empty stopword file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, []byte("# nothing here\n"), 0o600))
		_, err := LoadResources(config.NLPConfig{StopwordsPath: path})
		assert.ErrorIs(t, err, models.ErrMissingLinguisticResource)
	})

	t.Run("missing exceptions file", func(t *testing.T) {
		_, err := LoadResources(config.NLPConfig{
			LemmaExceptionsPath: filepath.Join(t.TempDir(), "missing.yaml"),
		})
		assert.ErrorIs(t, err, models.ErrMissingLinguisticResource)
	})

	t.Run("malformed exceptions file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))
		_, err := LoadResources(config.NLPConfig{LemmaExceptionsPath: path})
		assert.ErrorIs(t, err, models.ErrMissingLinguisticResource)
	})
}
