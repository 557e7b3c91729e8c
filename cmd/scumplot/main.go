package main

import (
	"os"

	"github.com/kelly-tou/scum-code/cmd/scumplot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
