package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nmchat/nmbot/config"
	"github.com/nmchat/nmbot/pkg/auth"
	"github.com/nmchat/nmbot/pkg/chatbot"
	"github.com/nmchat/nmbot/pkg/corpus"
	"github.com/nmchat/nmbot/pkg/models"
	"github.com/nmchat/nmbot/pkg/nlp"
	"github.com/nmchat/nmbot/pkg/responder"
	"github.com/nmchat/nmbot/pkg/server"
	"github.com/nmchat/nmbot/pkg/store/badgerstore"
	"github.com/nmchat/nmbot/pkg/store/postgres"
)

// run is the entrypoint for the nmbot server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring nmbot: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting nmbot server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState, err := NewAppState(cfg)
	if err != nil {
		log.Fatalf("Error starting nmbot: %s", err)
	}
	setupSignalHandler(appState)

	srv, err := server.Create(appState)
	if err != nil {
		log.Fatal(err)
	}

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState loads the linguistic resources and corpus, trains the bot and
// opens the interaction log. Any error here means the server must not start.
func NewAppState(cfg *config.Config) (*models.AppState, error) {
	bot, err := newBot(cfg)
	if err != nil {
		return nil, err
	}

	appState := &models.AppState{
		Bot:    bot,
		Config: cfg,
	}
	if err := initializeInteractionStore(context.Background(), appState); err != nil {
		return nil, err
	}
	return appState, nil
}

func newBot(cfg *config.Config) (*chatbot.Bot, error) {
	res, err := nlp.LoadResources(cfg.NLP)
	if err != nil {
		return nil, err
	}
	def, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		return nil, err
	}
	return chatbot.New(res, def, chatbot.Options{
		Threshold: cfg.Matcher.Threshold,
		Source:    responder.NewLockedSource(cfg.Responder.Seed),
	})
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		redacted := *cfg
		if redacted.Auth.Secret != "" {
			redacted.Auth.Secret = "<redacted>"
		}
		out, err := json.MarshalIndent(redacted, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}
	if generateKey {
		token, err := auth.GenerateJWT(cfg)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(token)
		os.Exit(0)
	}
}

// initializeInteractionStore opens the interaction log selected by store.type.
func initializeInteractionStore(ctx context.Context, appState *models.AppState) error {
	storeCfg := appState.Config.Store

	switch storeCfg.Type {
	case config.StoreTypeNone, "":
		log.Info("Interaction log disabled")
		return nil
	case config.StoreTypeBadger:
		s, err := badgerstore.Open(storeCfg.Badger.Path, storeCfg.ListLimit)
		if err != nil {
			return err
		}
		appState.InteractionStore = s
	case config.StoreTypePostgres:
		s, err := postgres.Open(ctx, storeCfg.Postgres.DSN, storeCfg.ListLimit)
		if err != nil {
			return err
		}
		appState.InteractionStore = s
	default:
		return fmt.Errorf("store.type (%s) is not supported", storeCfg.Type)
	}

	log.Info("Using interaction store: ", storeCfg.Type)
	return nil
}

// setupSignalHandler sets up a signal handler to close the interaction log on termination
func setupSignalHandler(appState *models.AppState) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		if appState.InteractionStore != nil {
			if err := appState.InteractionStore.Close(); err != nil {
				log.Errorf("Error closing interaction store: %v", err)
			}
		}
		os.Exit(0)
	}()
}
