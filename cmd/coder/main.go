// Package main provides the coder command.
package main

import (
	"os"

	"github.com/syssam/coder/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
