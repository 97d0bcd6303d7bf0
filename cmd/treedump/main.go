package main

import (
	"os"

	"github.com/arthur-debert/treedump/cmd/treedump/commands"
	"github.com/arthur-debert/treedump/pkg/output"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := output.NewRenderer(os.Stderr, !output.DetectColor(os.Stderr))
		_ = renderer.RenderError(err)
		os.Exit(1)
	}
}
