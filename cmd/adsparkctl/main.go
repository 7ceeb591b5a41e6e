package main

import (
	"os"

	"adspark-ai-wizard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
