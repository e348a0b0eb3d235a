package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/app"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "clientarea",
	Short: "Client self-service area for professionals and their clients.",
	Long: `clientarea lets professionals hand their clients an activation link (usually a
QR code) that opens a self-service area without a password. Every opening is
recorded so professionals can see how often each client uses it.

Configuration is read from the environment, optionally preloaded from an .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The default file is optional; an explicit one must exist.
		return app.LoadEnvFile(envFile, cmd.Flags().Changed("env-file"))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file of KEY=value pairs loaded into the environment")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newCodesCommand())
}
