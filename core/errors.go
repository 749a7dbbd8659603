package core

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind of every error returned by a write. Use
// errors.Is to test for it and errors.As with *ArgumentError to find out which
// parameter was rejected.
var ErrInvalidArgument = errors.New("invalid argument")

// Param identifies a positional argument of a write.
type Param string

const (
	// ParamKey1 is the first key component.
	ParamKey1 Param = "key1"
	// ParamKey2 is the second key component.
	ParamKey2 Param = "key2"
	// ParamKey3 is the third key component.
	ParamKey3 Param = "key3"
	// ParamValue is the stored value.
	ParamValue Param = "value"
)

// KeyParams lists the key parameters in positional order.
var KeyParams = [Arity]Param{ParamKey1, ParamKey2, ParamKey3}

// Reason describes why an argument was rejected.
type Reason int

const (
	// ReasonBlank means the argument was empty or whitespace only.
	ReasonBlank Reason = iota
	// ReasonReserved means the argument contains a byte reserved for row id
	// canonicalization.
	ReasonReserved
)

// String returns a short label suitable for logs and metric labels.
func (r Reason) String() string {
	switch r {
	case ReasonBlank:
		return "blank"
	case ReasonReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// ArgumentError reports a rejected write argument.
type ArgumentError struct {
	Param  Param
	Reason Reason
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	switch e.Reason {
	case ReasonReserved:
		return fmt.Sprintf("wildmap: %s must not contain reserved separator characters", e.Param)
	default:
		return fmt.Sprintf("wildmap: %s must not be empty or blank", e.Param)
	}
}

// Is matches ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewArgumentError returns an *ArgumentError for the given parameter.
func NewArgumentError(p Param, r Reason) error {
	return &ArgumentError{Param: p, Reason: r}
}
