package jwt

import "errors"

// Error kinds returned by the constructor-style operations in this
// package (token.go, encode.go, decode.go, validate.go). Getter-style
// accessors return the error as the second result of a (value, error)
// pair, with the type's zero value as the first.
var (
	// ErrInvalid covers malformed input, an algorithm outside the fixed
	// enumeration, a key that does not match the algorithm's key-presence
	// rule, a signature mismatch, or any other invariant violation
	// attempted by the caller.
	ErrInvalid = errors.New("jwt: invalid")

	// ErrNoMemory is returned by SetAlg when the installed allocator hook
	// (see alloc.go) returns a buffer shorter than the key.
	ErrNoMemory = errors.New("jwt: no memory")

	// ErrExists is returned by AddHeader/AddGrant family calls when the
	// name is already present: for the typed calls, only when it holds a
	// value of the same kind; for AddHeadersJSON/AddGrantsJSON, whatever
	// it holds.
	ErrExists = errors.New("jwt: already exists")

	// ErrNotPresent is returned by a typed getter that could not find the
	// requested name.
	ErrNotPresent = errors.New("jwt: not present")
)
