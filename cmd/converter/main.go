package main

import (
	"os"

	"go-currency-converter/cmd/converter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
