package main

import (
	"os"

	"github.com/jhoicas/gestion-productos/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
