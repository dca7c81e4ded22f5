package health

import "errors"

// Sentinel errors for the health package.
var (
	// ErrCheckTimeout is reported when a check exceeds the probe timeout.
	ErrCheckTimeout = errors.New("health: check timeout")
	// ErrNotConfigured is reported by Static checks built without a dependency.
	ErrNotConfigured = errors.New("health: dependency not configured")
)
