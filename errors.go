package match

import "errors"

// ErrNoPattern matches every *DispatchError under errors.Is.
var ErrNoPattern = errors.New("no pattern found")

// DispatchError is returned when a value has neither an exact case nor a
// wildcard.
type DispatchError struct {
	// Value is the unmatched scrutinee.
	Value any
}

func (e *DispatchError) Error() string {
	return "No pattern found for value: " + describe(e.Value)
}

// Is reports whether target is ErrNoPattern.
func (e *DispatchError) Is(target error) bool {
	return target == ErrNoPattern
}
