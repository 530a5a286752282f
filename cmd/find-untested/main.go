// Package main provides find-untested, which lists source files without a colocated test file.
package main

import (
	"os"

	"github.com/lerenn/code-hygiene/internal/cli"
)

func main() {
	opts := &cli.Options{}
	os.Exit(cli.Execute(cli.NewStandaloneCmd("find-untested", cli.NewUntestedCmd(opts), opts)))
}
