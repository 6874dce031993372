package cli

import (
	"github.com/bratus/pavadzimes/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "pavadzimes",
	Short: "Invoice and delivery note generator for SIA Bratus",
	Long: `Pavadzimes generates Latvian delivery notes, invoices and advance
invoices as PDF and Word documents, with sequential numbering kept in a
local history file.

By default, running pavadzimes without arguments launches the interactive TUI.
Use subcommands for CLI operations.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: launch TUI
		launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(remoteCmd)
	rootCmd.AddCommand(tuiCmd)
}
