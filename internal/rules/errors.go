package rules

import "errors"

// Sentinel errors surfaced at the embedding boundary. Wrapped with
// fmt.Errorf("%w: ...", ...) by callers that need to attach context; checked
// with errors.Is so the caller never has to string-match.
var (
	ErrBadFEN        = errors.New("bad_fen")
	ErrMalformedMove = errors.New("malformed_move")
	ErrIllegalMove   = errors.New("illegal_move")
)
