package openf1

import "errors"

// Sentinel kinds for data source errors.
var (
	// ErrMissingDriverNumber marks a feed record with no driver identity.
	// This is the one contract violation the pipeline refuses to degrade
	// around.
	ErrMissingDriverNumber = errors.New("record missing driver_number")
)
