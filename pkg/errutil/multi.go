// Package errutil contains utilities for working with errors.
package errutil

import (
	"errors"
	"strings"
)

// Multi combines errors into one. Nil arguments are dropped, and arguments
// that were themselves returned by Multi are flattened. It returns nil if no
// error is left, and the only error if exactly one is left.
//
// The combined error supports errors.Is and errors.As on each of its parts.
func Multi(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if multi, ok := err.(multiError); ok {
			nonNil = append(nonNil, multi...)
		} else {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return multiError(nonNil)
	}
}

type multiError []error

func (me multiError) Error() string {
	var sb strings.Builder
	sb.WriteString("multiple errors: ")
	for i, e := range me {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

func (me multiError) Unwrap() []error { return me }

// Is reports whether any part matches target. Go 1.20 walks Unwrap() []error
// itself; this keeps errors.Is working on older toolchains.
func (me multiError) Is(target error) bool {
	for _, e := range me {
		if errors.Is(e, target) {
			return true
		}
	}
	return false
}
