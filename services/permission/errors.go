package permission

import "errors"

// ErrDenied is the root of every authorization failure. Services wrap it
// with the specific reason; controllers match on it to answer 403.
var ErrDenied = errors.New("permission denied")
