package main

import (
	"os"

	"github.com/axelarnetwork/polls/cmd/polld/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
