package main

import (
	"fmt"

	"github.com/aussiebroadwan/passkeep/pkg/cryptox"
	"github.com/spf13/cobra"
)

var genpassLength int

var genpassCmd = &cobra.Command{
	Use:   "genpass",
	Short: "Print a random password",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if genpassLength < cryptox.MinPasswordLength || genpassLength > cryptox.MaxPasswordLength {
			return fmt.Errorf("length must be between %d and %d", cryptox.MinPasswordLength, cryptox.MaxPasswordLength)
		}

		password, err := cryptox.GeneratePassword(genpassLength)
		if err != nil {
			return err
		}
		cmd.Println(password)
		return nil
	},
}

func init() {
	genpassCmd.Flags().IntVarP(&genpassLength, "length", "l", cryptox.DefaultPasswordLength, "password length")
}
