package main

import (
	"os"

	"github.com/agiangrant/boxtree/cmd/boxtree/commands"
)

func main() {
	cmd := commands.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
