package main

import (
	"github.com/aussiebroadwan/passkeep/pkg/cryptox"
	"github.com/spf13/cobra"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Print a fresh base64 encryption key for VAULT_ENCRYPTION_KEY",
	Long: `Prints a random 32-byte AES-256 key, base64 encoded.

Keep it safe: losing the key makes every stored secret unreadable, and
changing it does the same for secrets sealed with the old one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := cryptox.GenerateKey()
		if err != nil {
			return err
		}
		cmd.Println(key)
		return nil
	},
}
