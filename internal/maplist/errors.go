package maplist

import "github.com/rotisserie/eris"

var (
	// ErrInvalidRequest is returned before searching when the request is malformed.
	ErrInvalidRequest = eris.New("invalid map list request")

	// ErrNoMaplist is returned when no list satisfies every rule. Retrying with
	// the same request gives the same result; the organizer has to change the
	// input, e.g. by supplying a tiebreaker pool.
	ErrNoMaplist = eris.New("no valid map list")
)
