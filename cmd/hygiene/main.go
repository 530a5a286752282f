// Package main provides the command-line interface for the hygiene checks.
package main

import (
	"os"

	"github.com/lerenn/code-hygiene/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCmd(&cli.Options{})))
}
