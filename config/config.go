package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/nmchat/nmbot/internal"
)

var log = internal.GetLogger()

var validate = validator.New()

const (
	StoreTypeNone     = "none"
	StoreTypeBadger   = "badger"
	StoreTypePostgres = "postgres"
)

// Defaults returns the configuration used for any field left unset by the
// config file and the environment.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Host:            "",
			Port:            5000,
			AllowedOrigins:  []string{"*"},
			MaxRequestBytes: 1 << 16,
		},
		Log:     LogConfig{Level: "info"},
		Matcher: MatcherConfig{Threshold: 0.3},
		Store: StoreConfig{
			Type:      StoreTypeNone,
			ListLimit: 100,
			Badger:    BadgerConfig{Path: "./data/interactions"},
		},
	}
}

// LoadConfig loads the config file and ENV variables into a Config struct.
// A missing config.yaml in the working directory is not an error; an explicitly
// named config file that cannot be read is.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetConfigType("yaml")

	v.SetEnvPrefix("NMBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Environment variables take precedence over config file
	loadDotEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug("no config file found, using defaults and environment")
	}

	// AutomaticEnv only resolves keys viper already knows about
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := ApplyDefaults(&cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var envKeys = []string{
	"server.host",
	"server.port",
	"server.allowed_origins",
	"server.max_request_bytes",
	"log.level",
	"auth.secret",
	"auth.required",
	"nlp.stopwords_path",
	"nlp.lemma_exceptions_path",
	"nlp.lemma_invariants_path",
	"corpus.path",
	"matcher.threshold",
	"responder.seed",
	"store.type",
	"store.list_limit",
	"store.badger.path",
	"store.postgres.dsn",
}

// ApplyDefaults fills every zero-valued field of cfg from Defaults.
func ApplyDefaults(cfg *Config) error {
	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return fmt.Errorf("error applying config defaults: %w", err)
	}
	return nil
}

// Validate checks the struct constraints of cfg and the cross-field rules
// the tags cannot express.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Auth.Required && cfg.Auth.Secret == "" {
		return errors.New("invalid configuration: auth.secret must be set when auth.required is true")
	}
	switch cfg.Store.Type {
	case StoreTypeBadger:
		if cfg.Store.Badger.Path == "" {
			return errors.New("invalid configuration: store.badger.path must be set")
		}
	case StoreTypePostgres:
		if cfg.Store.Postgres.DSN == "" {
			return errors.New("invalid configuration: store.postgres.dsn must be set")
		}
	}
	return nil
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
