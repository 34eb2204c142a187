package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    json:"server"`
	Log       LogConfig       `mapstructure:"log"       json:"log"`
	Auth      AuthConfig      `mapstructure:"auth"      json:"auth"`
	NLP       NLPConfig       `mapstructure:"nlp"       json:"nlp"`
	Corpus    CorpusConfig    `mapstructure:"corpus"    json:"corpus"`
	Matcher   MatcherConfig   `mapstructure:"matcher"   json:"matcher"`
	Responder ResponderConfig `mapstructure:"responder" json:"responder"`
	Store     StoreConfig     `mapstructure:"store"     json:"store"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"              json:"host"`
	Port           int      `mapstructure:"port"              json:"port"              validate:"gte=1,lte=65535"`
	AllowedOrigins []string `mapstructure:"allowed_origins"   json:"allowed_origins"`
	// MaxRequestBytes caps the size of request bodies
	MaxRequestBytes int64 `mapstructure:"max_request_bytes" json:"max_request_bytes" validate:"gte=1"`
}

type LogConfig struct {
	Level string `mapstructure:"level" json:"level"`
}

type AuthConfig struct {
	Secret   string `mapstructure:"secret"   json:"secret"`
	Required bool   `mapstructure:"required" json:"required"`
}

// NLPConfig points at optional replacements for the embedded linguistic resources.
// Empty paths select the embedded defaults.
type NLPConfig struct {
	StopwordsPath       string `mapstructure:"stopwords_path"        json:"stopwords_path"`
	LemmaExceptionsPath string `mapstructure:"lemma_exceptions_path" json:"lemma_exceptions_path"`
	LemmaInvariantsPath string `mapstructure:"lemma_invariants_path" json:"lemma_invariants_path"`
}

type CorpusConfig struct {
	// Path to a YAML corpus file. Empty selects the compiled-in corpus.
	Path string `mapstructure:"path" json:"path"`
}

type MatcherConfig struct {
	// Threshold is exclusive: a best score must be strictly greater to match.
	Threshold float64 `mapstructure:"threshold" json:"threshold" validate:"gt=0,lt=1"`
}

type ResponderConfig struct {
	// Seed for response selection. 0 seeds from the clock.
	Seed uint64 `mapstructure:"seed" json:"seed"`
}

type StoreConfig struct {
	Type      string         `mapstructure:"type"       json:"type"       validate:"oneof=none badger postgres"`
	ListLimit int            `mapstructure:"list_limit" json:"list_limit" validate:"gte=1"`
	Badger    BadgerConfig   `mapstructure:"badger"     json:"badger"`
	Postgres  PostgresConfig `mapstructure:"postgres"   json:"postgres"`
}

type BadgerConfig struct {
	Path string `mapstructure:"path" json:"path"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn" json:"dsn"`
}
