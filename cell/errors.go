package cell

import (
	"errors"
	"fmt"
)

// ErrConvert is the sentinel matched by every conversion failure.
var ErrConvert = errors.New("value not convertible")

// ConvertError reports a value that cannot be represented in the
// requested target kind.
type ConvertError struct {
	Value  Value
	Target Kind
}

// Error implements the error interface.
func (e *ConvertError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s", e.Value.String(), e.Target)
}

// Is reports whether the target matches this error.
func (e *ConvertError) Is(target error) bool {
	return target == ErrConvert
}
