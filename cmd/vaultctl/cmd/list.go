// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vaultlocker/vaultlocker/models"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored credentials",
	Long: `Lists the signed-in user's credentials: the local vault merged with
the remote service when a session exists. Passwords are never shown; use
"vaultctl copy" to put one on the clipboard.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		records := reconciler.Load(cmd.Context())

		switch listFormat {
		case "json":
			return printJSON(records)
		default:
			return printTable(records)
		}
	},
}

func printTable(records []models.DecryptedCredential) error {
	if len(records) == 0 {
		fmt.Println("No credentials found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tSITE\tUSERNAME\n")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\n", rec.ID, rec.Site, rec.Username)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d credential(s).\n", len(records))
	return nil
}

func printJSON(records []models.DecryptedCredential) error {
	for i := range records {
		records[i].Password = ""
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format (table, json)")
	rootCmd.AddCommand(listCmd)
}
