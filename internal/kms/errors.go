package kms

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestCorrupted means the service did not act on what was sent.
	ErrRequestCorrupted = errors.New("request corrupted in transit")
	// ErrResponseCorrupted means the returned material does not match its checksum.
	ErrResponseCorrupted = errors.New("response corrupted in transit")
	// ErrNoSignature is returned when the service answers without a signature.
	ErrNoSignature = errors.New("signing service returned no signature")
)

// IntegrityError reports a failed integrity check on a signing service exchange.
// It unwraps to ErrRequestCorrupted or ErrResponseCorrupted and is never retried.
type IntegrityError struct {
	Operation string
	Detail    string
	Err       error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Operation, e.Err, e.Detail)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// IsIntegrity checks whether err is an IntegrityError and returns it.
func IsIntegrity(err error) (*IntegrityError, bool) {
	var ie *IntegrityError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
