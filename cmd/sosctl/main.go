package main

import (
	"os"

	"github.com/DoyleJ11/sosphone-backend/cmd/sosctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
