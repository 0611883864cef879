package main

import (
	"os"

	"weekgrid/cmd/weekgrid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
