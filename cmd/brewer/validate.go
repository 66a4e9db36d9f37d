package main

import (
	"fmt"
	"os"

	"github.com/aretw0/brewer/pkg/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <profile>",
	Short: "Check a profile file",
	Long:  `Parses a YAML profile and reports values that are out of range or that would keep the machine from ever becoming Ready.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := config.Load(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Profile is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
