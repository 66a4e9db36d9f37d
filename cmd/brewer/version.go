package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/brewer"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of brewer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("brewer version %s\n", strings.TrimSpace(brewer.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
