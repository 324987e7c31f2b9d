package main

import (
	"os"

	"github.com/acpkit/agentscout/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
