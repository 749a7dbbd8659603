package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_Components(t *testing.T) {
	k := Key{K1: "a", K2: "b", K3: "c"}
	assert.Equal(t, [Arity]string{"a", "b", "c"}, k.Components())
}

func TestQuery_At(t *testing.T) {
	v := "Civic"
	q := NewQuery(nil, &v, nil)

	_, ok := q.At(0)
	assert.False(t, ok)
	got, ok := q.At(1)
	assert.True(t, ok)
	assert.Equal(t, "Civic", got)
	assert.False(t, q.IsWildcard())
	assert.True(t, NewQuery(nil, nil, nil).IsWildcard())
}

func TestArgumentError(t *testing.T) {
	err := NewArgumentError(ParamValue, ReasonBlank)
	assert.Equal(t, "wildmap: value must not be empty or blank", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	wrapped := fmt.Errorf("loading entry 3: %w", NewArgumentError(ParamKey1, ReasonReserved))
	assert.True(t, errors.Is(wrapped, ErrInvalidArgument))

	var argErr *ArgumentError
	assert.True(t, errors.As(wrapped, &argErr))
	assert.Equal(t, ParamKey1, argErr.Param)
	assert.Equal(t, "wildmap: key1 must not contain reserved separator characters", argErr.Error())
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "blank", ReasonBlank.String())
	assert.Equal(t, "reserved", ReasonReserved.String())
	assert.Equal(t, "unknown", Reason(42).String())
}
