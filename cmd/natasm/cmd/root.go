package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "natasm",
	Short: "AMD64 machine-code encoder inspector",
	Long: `natasm builds a single AMD64 instruction from flags, runs it through
the encoder, and prints the resulting bytes and chosen form id.

It is a debugging aid for internal/asm/amd64, not an assembly front end: it
never parses assembly text.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
