package interfaces

import "errors"

// ErrNotFound is returned when a document does not exist. Handlers map
// it to a 404.
var ErrNotFound = errors.New("not found")
