package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/treedump/cmd/treedump/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()

	if err := doc.GenMan(rootCmd, commands.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
