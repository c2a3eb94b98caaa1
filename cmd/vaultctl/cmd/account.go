// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Request a password recovery email",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := requireRemote()
		if err != nil {
			return err
		}

		email, err := promptLine("Email: ")
		if err != nil {
			return err
		}

		if err = svc.RecoverPassword(cmd.Context(), email); err != nil {
			return fmt.Errorf("recovery request failed: %w", err)
		}

		fmt.Println("Recovery email requested, check your inbox.")
		return nil
	},
}

var verifyPinCmd = &cobra.Command{
	Use:   "verify-pin",
	Short: "Verify the account master PIN",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := requireRemote()
		if err != nil {
			return err
		}

		token := reconciler.Session().Token
		if token == "" {
			return fmt.Errorf("not signed in")
		}

		pin, err := promptPassword("Master PIN: ")
		if err != nil {
			return err
		}

		if err = svc.VerifyMasterPin(cmd.Context(), pin, token); err != nil {
			return fmt.Errorf("PIN verification failed: %w", err)
		}

		fmt.Println("PIN verified.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		session := reconciler.Session()
		if !session.Valid() {
			fmt.Println("Not signed in.")
			return nil
		}

		user := *session.User
		if remote != nil {
			fresh, err := remote.Profile(cmd.Context(), session.Token)
			if err != nil {
				log.Warn().Err(err).Msg("profile refresh failed, showing cached session user")
			} else {
				user = fresh
			}
		}

		fmt.Printf("ID:    %s\n", user.Identifier())
		if user.Name != "" {
			fmt.Printf("Name:  %s\n", user.Name)
		}
		if user.Email != "" {
			fmt.Printf("Email: %s\n", user.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recoverCmd)
	rootCmd.AddCommand(verifyPinCmd)
	rootCmd.AddCommand(whoamiCmd)
}
