// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy a credential's password to the clipboard",
	Long: `Decrypts the credential with the given id and places its password on
the system clipboard. The password is never printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		records, err := vault.ListWithSecrets(cmd.Context(), "")
		if err != nil {
			return fmt.Errorf("reading credentials: %w", err)
		}

		for _, rec := range records {
			if rec.ID != id {
				continue
			}
			if err = clipboard.WriteAll(rec.Password); err != nil {
				return fmt.Errorf("writing to clipboard: %w", err)
			}
			fmt.Printf("Password for %s copied to clipboard.\n", rec.Site)
			return nil
		}

		return fmt.Errorf("no credential with id %s", id)
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
