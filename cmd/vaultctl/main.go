// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package main

import "github.com/vaultlocker/vaultlocker/cmd/vaultctl/cmd"

func main() {
	cmd.Execute()
}
