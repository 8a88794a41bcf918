package kwargs

import "errors"

// Chain misuse errors. Operations that detect misuse panic with an error
// wrapping one of these, so a recovering caller can match with errors.Is.
var (
	ErrLinked      = errors.New("carrier is already linked into a chain")
	ErrNotHead     = errors.New("carrier is not a chain head")
	ErrInvalidSlot = errors.New("invalid slot")
)
