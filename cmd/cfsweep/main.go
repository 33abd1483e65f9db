package main

import (
	"os"

	"github.com/cfsweep/cfsweep-cli/internal/cli"
	"github.com/cfsweep/cfsweep-cli/internal/domain"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(domain.ExitCode(err))
	}
}
