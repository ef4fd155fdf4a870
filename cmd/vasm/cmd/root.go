package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vasm",
	Short: "vasm is an assembler for the 32-bit register machine",
	Long:  `vasm translates register-machine assembly source into a flat object file.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "file-operations",
		Title: "File operations",
	})

	rootCmd.AddCommand(assembleCmd)
}
