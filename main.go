// Package main is the entry point for the forumctl CLI
package main

import (
	"os"

	"github.com/Sowjanyakambhampati/forumctl/cmd"
	"github.com/Sowjanyakambhampati/forumctl/internal/output"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		cliErr := output.FromError(err)
		output.NewPrinter(false).FormatError(cliErr)
		os.Exit(cliErr.ExitCode)
	}
}
