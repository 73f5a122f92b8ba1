package navigation

import "errors"

// ErrMalformedQuery is returned when the query segment of a profile route
// cannot be percent-decoded.
var ErrMalformedQuery = errors.New("malformed profile query")
