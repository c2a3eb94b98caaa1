package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidStorageConfigs indicates an unknown storage driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidDaemonConfigs indicates a missing daemon listen address.
	ErrInvalidDaemonConfigs = errors.New("invalid daemon configuration")
)
