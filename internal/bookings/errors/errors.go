package errors

import "errors"

// ErrInvalidID marks a booking identifier that is not a valid ObjectID hex
// string. The conversion happens before any store access so a malformed id
// can never reach the collection.
var ErrInvalidID = errors.New("invalid booking ID")
