// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

// Package cmd implements the vaultctl command tree. vaultctl is a UI
// context: it talks to the running vaultd daemon over the message channel
// for vault operations and to the remote account service for session
// operations.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultlocker/vaultlocker/internal/adapter"
	"github.com/vaultlocker/vaultlocker/internal/config"
	"github.com/vaultlocker/vaultlocker/internal/crypto"
	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/internal/service"
	"github.com/vaultlocker/vaultlocker/internal/session"
	"github.com/vaultlocker/vaultlocker/internal/storage"
	"github.com/vaultlocker/vaultlocker/internal/store"
	"github.com/vaultlocker/vaultlocker/models"
)

var (
	cfgFile       string
	daemonAddress string
	remoteURL     string

	cfg *config.StructuredConfig
	log *logger.Logger

	vault        *adapter.DaemonClient
	remote       adapter.RemoteService
	sessions     session.Manager
	reconciler   *service.Reconciler
	closeStorage func()
)

var rootCmd = &cobra.Command{
	Use:   "vaultctl",
	Short: "vaultctl manages the local credential vault",
	Long: `vaultctl is the command-line front end of the vaultlocker daemon.

Credential operations (list, save, delete, copy) go through the running
vaultd process; login and logout talk to the remote account service and
persist the session in shared storage.`,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error

	if cfgFile != "" {
		if setErr := os.Setenv("CONFIG", cfgFile); setErr != nil {
			return setErr
		}
	}

	cfg, err = config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if daemonAddress != "" {
		cfg.Daemon.Address = daemonAddress
	}
	if remoteURL != "" {
		cfg.Remote.BaseURL = remoteURL
	}

	log = logger.NewFileLogger("vaultctl")

	vault, err = adapter.NewDaemonClient(adapter.DaemonConfig{
		Address: cfg.Daemon.Address,
		Timeout: cfg.Remote.Timeout,
	}, log)
	if err != nil {
		return fmt.Errorf("connecting to vault daemon: %w", err)
	}

	if cfg.Remote.BaseURL != "" {
		remote, err = adapter.NewHTTPRemoteService(adapter.RemoteConfig{
			BaseURL: cfg.Remote.BaseURL,
			Timeout: cfg.Remote.Timeout,
		}, log)
		if err != nil {
			return fmt.Errorf("connecting to remote service: %w", err)
		}
	} else {
		remote = nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	extension, page, closeFn, err := storage.OpenAreas(ctx,
		cfg.Storage.Driver, cfg.Storage.Path, cfg.Storage.PageAreaPath, log)
	if err != nil {
		return fmt.Errorf("opening storage areas: %w", err)
	}
	closeStorage = closeFn

	cipher := crypto.NewCipher()
	vaultStore := store.NewVaultStore(extension, cipher, log)
	sessions = session.NewManager(extension, page, vaultStore, log)

	reconciler = service.NewReconciler(vault, remoteOrNoop(), sessions, log)
	if _, err = reconciler.Bootstrap(ctx); err != nil {
		log.Warn().Err(err).Msg("could not bootstrap session, continuing signed out")
	}

	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if closeStorage != nil {
		closeStorage()
	}
	return nil
}

// noopRemote stands in when no remote service is configured, so the
// reconciler stays on its local-only path without nil checks.
type noopRemote struct{}

func (noopRemote) FetchCredentials(context.Context, string) ([]models.DecryptedCredential, error) {
	return nil, nil
}

func (noopRemote) DeleteCredential(context.Context, string, string) error {
	return nil
}

func remoteOrNoop() service.RemoteVault {
	if remote != nil {
		return remote
	}
	return noopRemote{}
}

func requireRemote() (adapter.RemoteService, error) {
	if remote == nil {
		return nil, fmt.Errorf("no remote service configured, set REMOTE_BASE_URL or pass --remote")
	}
	return remote, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "JSON config file path")
	rootCmd.PersistentFlags().StringVar(&daemonAddress, "daemon", "", "vaultd address host:port")
	rootCmd.PersistentFlags().StringVar(&remoteURL, "remote", "", "remote account service base URL")
}
