package main

import (
	"os"

	"github.com/mckelvym/visitraleigh.events.harvester/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
