package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/latch"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of latch",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("latch version %s\n", latch.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
