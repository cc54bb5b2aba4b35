package main

import (
	"os"

	"github.com/ariel-frischer/bumpgen/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
