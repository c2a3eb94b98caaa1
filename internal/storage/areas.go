// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package storage

import (
	"context"
	"fmt"

	"github.com/vaultlocker/vaultlocker/internal/logger"
)

// OpenAreas opens the extension area on the requested backend ("sqlite" or
// "file") and the page area as a JSON document (in-memory when pageAreaPath
// is empty). The returned close function releases whatever the driver holds
// open; it is non-nil even on the file backend.
func OpenAreas(ctx context.Context, driver, path, pageAreaPath string, log *logger.Logger) (extension, page Area, closeFn func(), err error) {
	closeFn = func() {}

	switch driver {
	case "sqlite":
		db, openErr := OpenSQLite(ctx, path, log)
		if openErr != nil {
			return nil, nil, nil, openErr
		}
		extension = NewSQLiteArea(db, "extension", log)
		closeFn = func() {
			if closeErr := db.Close(); closeErr != nil {
				log.Err(closeErr).Msg("closing sqlite database failed")
			}
		}
	case "file":
		extension, err = NewFileArea(path)
		if err != nil {
			return nil, nil, nil, err
		}
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	page, err = NewFileArea(pageAreaPath)
	if err != nil {
		closeFn()
		return nil, nil, nil, err
	}

	return extension, page, closeFn, nil
}
