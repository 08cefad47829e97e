package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gtmdiff/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gtmdiff version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gtmdiff version %s\n", version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
