// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package accel

import (
	"errors"
	"fmt"
)

// ErrorKind classifies driver failures.
type ErrorKind int

const (
	// KindBus is a communication failure on the I2C/SPI/serial link.
	KindBus ErrorKind = iota
	// KindDevice is an invalid device or other hardware fault.
	KindDevice
	// KindMode means the device is in the wrong operating mode.
	KindMode
	// KindParam is an invalid parameter passed to the driver.
	KindParam

	// KindIO is the older name for KindBus.
	//
	// Deprecated: use KindBus.
	KindIO = KindBus
)

func (k ErrorKind) String() string {
	switch k {
	case KindBus:
		return "bus error"
	case KindDevice:
		return "device error"
	case KindMode:
		return "mode error"
	case KindParam:
		return "invalid parameter"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a driver failure of a given kind with an optional cause.
type Error struct {
	kind  ErrorKind
	cause error
}

// New returns an error of kind with no cause.
func New(kind ErrorKind) *Error {
	return &Error{kind: kind}
}

// NewWithCause returns an error of kind wrapping cause.
func NewWithCause(kind ErrorKind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

// FromCause wraps a transport error, e.g. from an SPI or I2C transaction,
// as a KindBus error.
func FromCause(cause error) *Error {
	return NewWithCause(KindBus, cause)
}

func (e *Error) Kind() ErrorKind { return e.kind }

// Cause returns the underlying error, or nil.
func (e *Error) Cause() error { return e.cause }

// IntoCause returns the underlying error and panics if there is none.
func (e *Error) IntoCause() error {
	if e.cause == nil {
		panic("accel: IntoCause called on an error with no cause")
	}
	return e.cause
}

func (e *Error) Error() string {
	if e.cause == nil {
		return "accel: " + e.kind.String()
	}
	return fmt.Sprintf("accel: %s: %v", e.kind, e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, accel.New(accel.KindBus)) matches any bus error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == e.kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return 0, false
}
