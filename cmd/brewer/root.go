package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brewer",
	Short: "brewer is a coffee machine simulator",
	Long:  `brewer runs a single coffee machine from the command prompt: fill it, empty it and brew until you quit.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("profile", "", "YAML profile overriding deposit capacities and recipes")
}
