package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/x2md/pkg/types"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported input file extensions",
	Run: func(cmd *cobra.Command, args []string) {
		for _, ext := range types.SupportedExtensions() {
			fmt.Fprintln(cmd.OutOrStdout(), "."+ext)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
