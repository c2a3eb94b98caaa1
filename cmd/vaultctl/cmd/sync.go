// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the local view from the remote service",
	Long: `Fetches the remote credential listing and merges it over the local
vault. When no session exists, or the remote is unreachable, the local data
stands alone.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		session := reconciler.Session()
		if session.Token == "" {
			fmt.Println("Not signed in; showing local credentials only.")
		}

		records := reconciler.Load(cmd.Context())
		fmt.Printf("Synced %d credential(s).\n", len(records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
