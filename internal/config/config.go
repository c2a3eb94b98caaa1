// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package config

import (
	"time"
)

// Defaults applied after all sources are merged. The daemon works with no
// configuration at all: a local listener, a sqlite vault next to the
// executable, and no remote service.
const (
	DefaultDaemonAddress = "localhost:8590"
	DefaultStorageDriver = "sqlite"
	DefaultStoragePath   = "vaultlocker.db"
	DefaultRemoteTimeout = 3 * time.Second
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the persistence settings for the vault areas.
	Storage Storage `envPrefix:"STORAGE_"`

	// Daemon holds the listener settings of the background process.
	Daemon Daemon `envPrefix:"DAEMON_"`

	// Remote holds the account service settings. An empty BaseURL means
	// the vault runs local-only.
	Remote Remote `envPrefix:"REMOTE_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of environment and flag values.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is the semantic version string of the running binary.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds persistence settings for the two vault areas.
type Storage struct {
	// Driver selects the backend of the primary (extension) area:
	// "sqlite" or "file".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// Path is the sqlite database path for the "sqlite" driver, or the
	// JSON document path for the "file" driver.
	// Env: STORAGE_PATH
	Path string `env:"PATH"`

	// PageAreaPath is the JSON document backing the secondary (page)
	// area. Empty means the page area is held in memory only.
	// Env: STORAGE_PAGE_AREA_PATH
	PageAreaPath string `env:"PAGE_AREA_PATH"`
}

// Daemon holds the network settings of the background process.
type Daemon struct {
	// Address is the TCP address the message endpoint listens on, in
	// "host:port" format.
	// Env: DAEMON_ADDRESS
	Address string `env:"ADDRESS"`
}

// Remote holds the account service settings.
type Remote struct {
	// BaseURL is the account service address. Empty disables all remote
	// calls; the vault is then local-only.
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds every remote call; on expiry callers fall back to
	// local-only data (e.g. "3s", "500ms").
	// Env: REMOTE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (first non-zero
// value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetClientConfig loads the configuration for UI-context binaries from
// environment variables and the optional JSON file. Command-line flags are
// left to the CLI framework, which layers its overrides on top.
func GetClientConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		build()
}

// applyDefaults fills the gaps left by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Daemon.Address == "" {
		cfg.Daemon.Address = DefaultDaemonAddress
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DefaultStorageDriver
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultStoragePath
	}
	if cfg.Remote.Timeout == 0 {
		cfg.Remote.Timeout = DefaultRemoteTimeout
	}
}

// validate checks the merged configuration before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case "sqlite", "file":
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Daemon.Address == "" {
		return ErrInvalidDaemonConfigs
	}

	return nil
}
