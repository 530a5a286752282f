// Package main provides find-unused, which lists files that are never imported.
package main

import (
	"os"

	"github.com/lerenn/code-hygiene/internal/cli"
)

func main() {
	opts := &cli.Options{}
	os.Exit(cli.Execute(cli.NewStandaloneCmd("find-unused", cli.NewUnusedCmd(opts), opts)))
}
