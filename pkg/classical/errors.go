package classical

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotInvertible indicates a multiplicative or affine key that
	// shares a factor with the alphabet size, so no decryption inverse exists.
	ErrKeyNotInvertible = errors.New("classical: key not invertible mod 26")

	// ErrMalformedKey indicates a key that fails structural validation, such
	// as a monoalphabetic key that is not a 26-letter permutation or a
	// columnar key with no alphabetic characters.
	ErrMalformedKey = errors.New("classical: malformed key")
)

// Error wraps a sentinel error with the operation that rejected the key.
type Error struct {
	Op  string // Operation that failed, e.g. "monoalphabetic.Encrypt"
	Err error  // Underlying sentinel error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an *Error for op around the given sentinel. Cipher
// subpackages use it so callers can branch with errors.Is.
func NewError(op string, err error) error {
	return &Error{Op: op, Err: err}
}
