package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portalctl",
		Short: "Mini-Förderportal tooling",
		Long: `Tooling for the Mini-Förderportal mock backend.

Available commands:
  seed         - Write the fixture dataset as JSON
  login        - Authenticate and print the session
  me           - Resolve a session token
  programs     - List funding programs
  applications - List applications
  submit       - Submit an application
  eligibility  - Run the eligibility pre-screening
  reset        - Reseed the server store (officer token)`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSeedCommand())
	for _, cmd := range newAPICommands() {
		rootCmd.AddCommand(cmd)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
