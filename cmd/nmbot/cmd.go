package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nmchat/nmbot/config"
	"github.com/nmchat/nmbot/internal"
	"github.com/nmchat/nmbot/pkg/models"
)

var (
	log *logrus.Logger

	cfgFile     string
	showVersion bool
	dumpConfig  bool
	generateKey bool
	topN        int
	noColor     bool
	listLimit   int
	unmatched   bool
)

var cmd = &cobra.Command{
	Use:   "nmbot",
	Short: "nmbot answers customer messages by matching them to known intents",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

var classifyCmd = &cobra.Command{
	Use:     "classify [message...]",
	Short:   "Shows how a message is normalized and which trained phrases it is closest to",
	Example: `nmbot classify "where is my order?" --top 3`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bot, err := newBot(mustLoadConfig())
		if err != nil {
			return err
		}
		return renderClassification(cmd.OutOrStdout(), bot, joinArgs(args), topN, !noColor)
	},
}

var intentsCmd = &cobra.Command{
	Use:   "intents",
	Short: "Lists the loaded intents",
	RunE: func(cmd *cobra.Command, args []string) error {
		bot, err := newBot(mustLoadConfig())
		if err != nil {
			return err
		}
		renderIntents(cmd.OutOrStdout(), bot)
		return nil
	},
}

var interactionsCmd = &cobra.Command{
	Use:   "interactions",
	Short: "Lists recently logged interactions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		appState := &models.AppState{Config: mustLoadConfig()}
		if err := initializeInteractionStore(cmd.Context(), appState); err != nil {
			return err
		}
		if appState.InteractionStore == nil {
			return fmt.Errorf("the interaction log is disabled. set store.type to badger or postgres")
		}
		defer appState.InteractionStore.Close()

		interactions, err := appState.InteractionStore.ListInteractions(
			cmd.Context(),
			models.InteractionFilter{Limit: listLimit, UnmatchedOnly: unmatched},
		)
		if err != nil {
			return err
		}
		renderInteractions(cmd.OutOrStdout(), interactions)
		return nil
	},
}

var dumpJsonSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for nmbot's configuration file",
	Example: "nmbot json-schema > nmbot_config_schema.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return nil
	},
}

func init() {
	cmd.AddCommand(classifyCmd)
	cmd.AddCommand(intentsCmd)
	cmd.AddCommand(interactionsCmd)
	cmd.AddCommand(dumpJsonSchemaCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump config")
	cmd.PersistentFlags().
		BoolVarP(&generateKey, "generate-token", "g", false, "generate a new JWT token")

	classifyCmd.Flags().IntVarP(&topN, "top", "n", 5, "number of ranked phrases to show")
	classifyCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	interactionsCmd.Flags().IntVarP(&listLimit, "limit", "l", 20, "maximum number of interactions")
	interactionsCmd.Flags().BoolVar(&unmatched, "unmatched", false, "only interactions that matched no intent")
}

func mustLoadConfig() *config.Config {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring nmbot: %s", err)
	}
	config.SetLogLevel(cfg)
	return cfg
}

// Execute executes the root cobra command.
func Execute() {
	log = internal.GetLogger()
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
