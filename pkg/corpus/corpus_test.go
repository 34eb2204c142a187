package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmchat/nmbot/pkg/models"
)

const testCorpus = `
intents:
  - id: weather
    patterns: ["weather", "is it raining"]
    responses: ["Check the sky."]
  - id: time
    patterns: ["what time is it"]
    responses: ["Time to get a watch."]
default_responses:
  - "No idea."
`

func TestDefault(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 8, def.Corpus.Len())
	assert.Equal(t, 43, def.Corpus.PatternCount())
	assert.Len(t, def.DefaultResponses, 5)
	assert.Len(t, def.Suggestions, 5)

	for _, in := range def.Corpus.Intents() {
		assert.Len(t, in.Responses, 3, in.ID)
	}
}

func TestParse(t *testing.T) {
	def, err := Parse([]byte(testCorpus))
	require.NoError(t, err)

	ids := []string{}
	for _, in := range def.Corpus.Intents() {
		ids = append(ids, in.ID)
	}
	assert.Equal(t, []string{"weather", "time"}, ids)
	assert.Equal(t, []string{"No idea."}, def.DefaultResponses)
	assert.Equal(t, DefaultSuggestions(), def.Suggestions)
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"not yaml":          "intents: [",
		"no intents":        "default_responses: [\"x\"]",
		"intent no pattern": "intents:\n  - id: a\n    responses: [\"x\"]\n",
		"blank response":    "intents:\n  - id: a\n    patterns: [\"hi\"]\n    responses: [\"  \"]\n",
		"blank pattern":     "intents:\n  - id: a\n    patterns: [\"\"]\n    responses: [\"x\"]\n",
		"blank default": "intents:\n  - id: a\n    patterns: [\"hi\"]\n    responses: [\"x\"]\n" +
			"default_responses: [\"\"]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.ErrorIs(t, err, models.ErrInvalidCorpus)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		def, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 8, def.Corpus.Len())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corpus.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testCorpus), 0o600))
		def, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, def.Corpus.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, models.ErrInvalidCorpus)
	})
}

func TestMarshal(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)

	data, err := Marshal(def)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, def.Corpus.Intents(), again.Corpus.Intents())
	assert.Equal(t, def.DefaultResponses, again.DefaultResponses)
}

type lowerNormalizer struct{}

func (lowerNormalizer) Normalize(text string) string {
	if text == "Can You" {
		return ""
	}
	return strings.ToLower(text)
}

func TestFlatten(t *testing.T) {
	c, err := models.NewCorpus([]models.Intent{
		{ID: "a", Patterns: []string{"One", "Two"}, Responses: []string{"x"}},
		{ID: "b", Patterns: []string{"Three", "Can You"}, Responses: []string{"y"}},
	})
	require.NoError(t, err)

	ts := Flatten(c, lowerNormalizer{})
	assert.Equal(t, 4, ts.Len())
	assert.Equal(t, []string{"a", "a", "b", "b"}, ts.Labels)
	assert.Equal(t, []string{"One", "Two", "Three", "Can You"}, ts.Patterns)
	assert.Equal(t, []string{"one", "two", "three", ""}, ts.Phrases)
}
