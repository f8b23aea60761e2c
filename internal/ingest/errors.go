package ingest

import "errors"

var (
	// ErrMissingColumn is returned when a required column cannot be found in the CSV header.
	ErrMissingColumn = errors.New("required column missing from guest list")
	// ErrEmptyInput is returned when the CSV contains no rows at all, not even a header.
	ErrEmptyInput = errors.New("guest list is empty")
)
