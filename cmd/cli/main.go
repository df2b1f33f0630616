// Command cli is an offline companion to the PocketPilot server. It runs the
// SMS and voice parsers and the plan generators locally and can create
// accounts directly in the configured database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pocketpilot",
		Short:         "PocketPilot budgeting tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		parseSMSCmd(),
		planCmd(),
		budgetCmd(),
		signupCmd(),
	)
	return cmd
}
