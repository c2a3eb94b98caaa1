// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultlocker/vaultlocker/models"
)

var (
	saveSite     string
	saveUsername string
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a new credential",
	Long: `Encrypts and stores a new credential in the signed-in user's vault.
The password is prompted interactively and never appears in the process
argument list.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if saveSite == "" {
			return fmt.Errorf("--site is required")
		}

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		if password == "" {
			return fmt.Errorf("password must not be empty")
		}

		saved, err := vault.Save(cmd.Context(), "", models.CredentialInput{
			Site:     saveSite,
			Username: saveUsername,
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("saving credential: %w", err)
		}

		fmt.Printf("Saved credential %s for %s.\n", saved.ID, saved.Site)
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVarP(&saveSite, "site", "s", "", "site the credential belongs to")
	saveCmd.Flags().StringVarP(&saveUsername, "username", "u", "", "username or login")
	rootCmd.AddCommand(saveCmd)
}
