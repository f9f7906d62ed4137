package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/internal/cli"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CLAUDE-AGENTS",
		Section: "1",
		Source:  cli.ProgramName + " " + version.Version,
		Manual:  cli.ProgramName + " manual",
	}

	// With a directory argument, write one page per command there.
	if len(os.Args) > 1 {
		if err := doc.GenManTree(rootCmd, header, os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
