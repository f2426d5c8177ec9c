package domain

import "errors"

var (
	// ErrExportInProgress gates re-entrancy: a second export for the same
	// user while one is in flight is rejected, not queued.
	ErrExportInProgress = errors.New("an export is already in progress")

	// ErrArchiveFailed is the hard failure of archive assembly itself.
	ErrArchiveFailed = errors.New("archive assembly failed")
)
