package main

import (
	"os"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
