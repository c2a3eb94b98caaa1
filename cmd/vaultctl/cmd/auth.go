// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vaultlocker/vaultlocker/internal/adapter"
	"github.com/vaultlocker/vaultlocker/models"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the remote account service",
	Long: `Authenticates against the remote account service and persists the
session in shared storage, where the vault daemon picks it up for user
resolution.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := requireRemote()
		if err != nil {
			return err
		}

		email, err := promptLine("Email: ")
		if err != nil {
			return err
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		auth, err := svc.Login(ctx, adapter.LoginRequest{Email: email, Password: password})
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		token := auth.SessionToken()
		if token == "" {
			return fmt.Errorf("account service returned no session token")
		}

		if err = sessions.Save(ctx, token, auth.User); err != nil {
			return fmt.Errorf("persisting session: %w", err)
		}
		reconciler.ReplaceSession(models.Session{Token: token, User: &auth.User})

		fmt.Println("Signed in.")

		records := reconciler.Load(ctx)
		fmt.Printf("Synced %d credential(s).\n", len(records))
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the remote service",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := requireRemote()
		if err != nil {
			return err
		}

		name, err := promptLine("Name: ")
		if err != nil {
			return err
		}
		email, err := promptLine("Email: ")
		if err != nil {
			return err
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Repeat password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		ctx := cmd.Context()
		auth, err := svc.Register(ctx, adapter.RegisterRequest{
			Name:     name,
			Email:    email,
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		if token := auth.SessionToken(); token != "" {
			if err = sessions.Save(ctx, token, auth.User); err != nil {
				return fmt.Errorf("persisting session: %w", err)
			}
			reconciler.ReplaceSession(models.Session{Token: token, User: &auth.User})
			fmt.Println("Account created, signed in.")
			return nil
		}

		fmt.Println("Account created. Run `vaultctl login` to sign in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and purge the cached session",
	Long: `Clears the persisted session and the signed-in user's locally cached
credentials. The remote service is notified on a best-effort basis; a dead
remote never blocks signing out.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if token := reconciler.Session().Token; token != "" && remote != nil {
			if err := remote.Logout(ctx, token); err != nil {
				log.Warn().Err(err).Msg("remote logout failed, clearing local session anyway")
			}
		}

		if err := sessions.Clear(ctx); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
		reconciler.ReplaceSession(models.Session{})

		fmt.Println("Signed out.")
		return nil
	},
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	var value string
	if _, err := fmt.Scanln(&value); err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(value), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
}
