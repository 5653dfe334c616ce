package main

import (
	"os"

	"github.com/erraggy/oascheck/cmd/oascheck/commands"
)

func main() {
	os.Exit(commands.Execute())
}
