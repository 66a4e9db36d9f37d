package main

import (
	"fmt"
	"os"

	"github.com/aretw0/brewer/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Operate the coffee machine interactively",
	Long:  `Starts a fresh machine (all deposits empty) and reads actions from stdin until EOF, 'quit' or Ctrl+C.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RunOptions{}
		opts.ProfilePath, _ = cmd.Flags().GetString("profile")
		opts.Headless, _ = cmd.Flags().GetBool("headless")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.LogFormat, _ = cmd.Flags().GetString("log-format")
		opts.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
		opts.MaxRejections, _ = cmd.Flags().GetInt("max-rejections")

		if opts.JSON && opts.Headless {
			fmt.Fprintln(os.Stderr, "Error: --json and --headless cannot be used together.")
			os.Exit(1)
		}

		if err := cli.RunSession(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run in headless mode (no prompts, terse menu)")
	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON frames out, labels in)")
	runCmd.Flags().Bool("debug", false, "Enable debug logs on stderr")
	runCmd.Flags().String("log-format", "text", "Log format: text or json")
	runCmd.Flags().String("metrics-addr", "", "Expose Prometheus metrics on this address (e.g. :2112)")
	runCmd.Flags().Int("max-rejections", 0, "Stop after this many invalid actions in a row (0 = never)")

	// 'run' is the default when no command is provided.
	rootCmd.Run = runCmd.Run
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
