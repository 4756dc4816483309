package descriptor

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotComputed is returned by Extract when no Compute has succeeded since construction or
	// since the last failed Compute.
	ErrNotComputed = errors.New("descriptor has not been computed")

	// ErrInvalidInput is wrapped by every error caused by malformed collaborator data, such as a
	// missing joint or a short command vector.
	ErrInvalidInput = errors.New("invalid descriptor input")
)

// NewInvalidInputError returns an error wrapping ErrInvalidInput with the formatted reason.
func NewInvalidInputError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

func newNotComputedError(kind Kind) error {
	return errors.Wrapf(ErrNotComputed, "cannot extract %s", kind)
}

// IsNotComputed returns whether err was caused by extracting before computing.
func IsNotComputed(err error) bool {
	return errors.Is(err, ErrNotComputed)
}

// IsInvalidInput returns whether err was caused by malformed collaborator data.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
