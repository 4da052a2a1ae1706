package set

import (
	"errors"
	"fmt"

	"github.com/elves/setvar/pkg/vars"
)

// Exit statuses of the builtin. Query mode instead exits with the number of
// missing targets.
const (
	StatusOK          = 0
	StatusCmdError    = 1
	StatusInvalidArgs = 2
)

// ParseErrorKind tags the ways an index expression can be malformed.
type ParseErrorKind int

const (
	// The token has no opening bracket after the name.
	MissingBracket ParseErrorKind = iota
	// The name before the bracket is not the name being targeted.
	NameMismatch
	// An index is not an integer, or the bracket is not closed.
	InvalidIndex
	// The brackets contain no index.
	NoIndex
)

// ParseError is returned when an index expression cannot be parsed.
type ParseError struct {
	Kind ParseErrorKind
	// The name being targeted.
	Name string
	// The name found in the token for NameMismatch, or the text starting at
	// the offending index for InvalidIndex.
	Text string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MissingBracket:
		return errArgCount.Error()
	case NameMismatch:
		return fmt.Sprintf(
			"Multiple variable names specified in single call (%s and %s)", e.Name, e.Text)
	case InvalidIndex:
		return fmt.Sprintf("Invalid index starting at '%s'", e.Text)
	default:
		return fmt.Sprintf("No index given for '%s'", e.Name)
	}
}

// ArgCountError is returned when the number of arguments doesn't fit the
// operation.
type ArgCountError struct{ Msg string }

func (e ArgCountError) Error() string { return e.Msg }

var (
	errArgCount = ArgCountError{
		"The number of variable indexes does not match the number of values"}
	errValuesWithErase = ArgCountError{"Values cannot be specified with erase"}
)

// BoundsError is returned when an update targets an index that is not
// positive.
type BoundsError struct{ Index int }

func (e BoundsError) Error() string { return "Array index out of bounds" }

// UsageError is returned for invalid options and combinations of options, and
// for invalid variable names.
type UsageError struct{ Msg string }

func (e UsageError) Error() string { return e.Msg }

var (
	errCombo      = UsageError{"Invalid combination of options"}
	errScope      = UsageError{"Variable scope can only be one of universal, global and local"}
	errExpUnexp   = UsageError{"Variable can't be both exported and unexported"}
	errShowSlices = UsageError{"`set --show` does not allow slices with the var names"}
	errEraseName  = UsageError{"Erase needs a variable name"}
)

// StoreError is returned when the store rejects a write.
type StoreError struct {
	Name string
	Err  error
}

func (e *StoreError) Error() string {
	switch {
	case errors.Is(e.Err, vars.ErrReadOnly):
		return fmt.Sprintf("Tried to change the read-only variable '%s'", e.Name)
	case errors.Is(e.Err, vars.ErrWrongScope):
		return fmt.Sprintf(
			"Tried to set the special variable '%s' with the wrong scope", e.Name)
	case errors.Is(e.Err, vars.ErrInvalidValue):
		return fmt.Sprintf(
			"Tried to set the special variable '%s' to an invalid value", e.Name)
	default:
		return fmt.Sprintf("Failed to set variable '%s': %v", e.Name, e.Err)
	}
}

func (e *StoreError) Unwrap() error { return e.Err }

// Returns the exit status for a failed operation.
func statusOf(err error) int {
	var usage UsageError
	if errors.As(err, &usage) {
		return StatusInvalidArgs
	}
	return StatusCmdError
}
