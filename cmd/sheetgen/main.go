// Package main is the entry point for the character sheet generator CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sheetgen",
	Short: "Character sheet generator",
	Long:  `sheetgen rolls complete RPG character sheets: level, class, race, attributes, and derived combat stats.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
