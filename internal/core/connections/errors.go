package connections

import "errors"

// ErrConnectionNotFound is returned when an account has no active
// connection for the requested platform
var ErrConnectionNotFound = errors.New("platform connection not found")
