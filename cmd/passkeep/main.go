package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "passkeep",
	Short: "Passkeep - a self-hosted password vault server.",
	Long: `Passkeep stores logins in per-account groups and keeps every secret
encrypted at rest with AES-256-GCM.

Running passkeep without a command starts the server.

Configuration is read from the --config YAML file, then a .env file in the
working directory, then the environment (VAULT_*, PORT, LOG_LEVEL, ...).
`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(genpassCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
