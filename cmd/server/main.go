// Package main is the entry point for the roll API server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roll-api",
	Short: "Item roll service",
	Long:  `roll-api composes item rolls (attacks, damage, saves, charges) into rendered chat cards for a virtual tabletop host.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(rollCmd)
}
