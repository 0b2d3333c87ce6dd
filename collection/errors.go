package collection

import "errors"

// ErrUniqueConstraintViolation is returned by Create when the record brings
// an identity value that is already taken.
var ErrUniqueConstraintViolation = errors.New("duplicate identity value violates unique constraint")

var ErrMissingIdentity = errors.New("record has no identity value")

var ErrInvalidIdentity = errors.New("identity value must be a positive integer")

var ErrRecordNotFound = errors.New("record not found")
