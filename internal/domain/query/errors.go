package query

import "errors"

// Sentinel kinds for rejected actions. Engine transitions never fail; these
// are raised only while decoding an Action.
var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrUnknownSortKey = errors.New("unknown sort key")
	ErrUnknownField   = errors.New("unknown range field")
	ErrUnknownEdge    = errors.New("unknown range edge")
)
