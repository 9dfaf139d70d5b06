package wheelpick

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrIllegalArgument  = errors.New("illegal argument")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNotOpen          = errors.New("picker is not open")
)

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// invalidSelectionError returns an invalid selection error with a
// custom error message, which unwraps to ErrInvalidSelection.
func invalidSelectionError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidSelection, message)
}
