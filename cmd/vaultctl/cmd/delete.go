// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a credential",
	Long: `Deletes a credential from both the remote service (best effort) and
the local vault. Deleting an id that does not exist is a success.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		if err := reconciler.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("deleting credential: %w", err)
		}

		fmt.Printf("Deleted credential %s.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
