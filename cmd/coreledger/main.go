package main

import (
	"os"

	"github.com/servisthird/coreledger/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
