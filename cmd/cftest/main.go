// Package main is the entry point for the cftest CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/cftest/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
