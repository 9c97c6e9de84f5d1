package services

import (
	"fmt"
	"log/slog"

	"gym-tracker/storage"
)

// readFallback turns a failed storage read into the warning shown next to
// the default data. Any other error is returned as is.
func readFallback(logger *slog.Logger, what string, err error) (string, error) {
	if err == nil {
		return "", nil
	}
	if !storage.IsStorageError(err) {
		return "", err
	}
	return storageWarning(logger, what, err), nil
}

func storageWarning(logger *slog.Logger, what string, err error) string {
	logger.Warn("Storage read failed, showing defaults", "data", what, "error", err)
	return fmt.Sprintf("Could not load saved %s data", what)
}
