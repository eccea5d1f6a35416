package apperrors

import "errors"

// Report errors are surfaced to API callers when a statistics request
// fails. The underlying cause is attached as details in the response.
var (
	// ErrFailedToRetrieveUserStats indicates the per-user report could not be built.
	ErrFailedToRetrieveUserStats = errors.New("failed to retrieve user statistics")

	// ErrFailedToRetrieveRivenStats indicates the per-riven report could not be built.
	ErrFailedToRetrieveRivenStats = errors.New("failed to retrieve riven statistics")
)
