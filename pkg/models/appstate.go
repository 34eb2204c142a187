package models

import (
	"github.com/nmchat/nmbot/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Bot ChatBot
	// InteractionStore is nil when the interaction log is disabled
	InteractionStore InteractionStore
	Config           *config.Config
}
