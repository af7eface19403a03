package cssls

import "errors"

// Sentinel errors.
var (
	// ErrConfigNotFound is returned when no .cssls.yaml is found.
	ErrConfigNotFound = errors.New("cssls: no .cssls.yaml found")
)
