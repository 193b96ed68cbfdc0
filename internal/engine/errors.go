package engine

import "errors"

// ErrInvalidSide is returned when a caller's side literal is neither
// "white" nor "black".
var ErrInvalidSide = errors.New("invalid_side")
