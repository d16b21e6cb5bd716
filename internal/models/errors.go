package models

import "errors"

// ErrNotFound marks an id-based lookup that missed. Handlers surface
// it as a 404 page; everything else is treated as a persistence
// failure.
var ErrNotFound = errors.New("record not found")
