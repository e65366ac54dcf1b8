package main

import (
	"os"

	"github.com/heymumford/ftoc-sub003/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
