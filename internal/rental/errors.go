package rental

import "errors"

// ErrNotFound is returned by repositories when no rental exists for
// the requested movie id.
var ErrNotFound = errors.New("rental not found")
