package main

import (
	"os"

	"pizzaorder/cmd/pizza/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
