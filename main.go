package main

import (
	cmd "github.com/nmchat/nmbot/cmd/nmbot"
	"github.com/nmchat/nmbot/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting nmbot")
	cmd.Execute()
}
