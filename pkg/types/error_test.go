package types

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorZeroValue(t *testing.T) {
	var zero Error
	assert.True(t, zero.IsZero())
	assert.Equal(t, uint32(StatusSuccess), zero.Code)
	assert.Empty(t, zero.Msg)
	assert.Equal(t, ErrKindNone, zero.Kind)

	var nilErr *Error
	assert.True(t, nilErr.IsZero())
	assert.Equal(t, "<nil>", nilErr.Error())

	assert.False(t, (&Error{Code: 2, Msg: "x"}).IsZero())
}

func TestErrorFormatting(t *testing.T) {
	e := &Error{
		Kind: ErrKindSubkeyCount,
		Code: uint32(StatusNotSupported),
		Msg:  "Failed to get subkeys count",
		Err:  StatusNotSupported,
	}
	assert.Equal(t, "Failed to get subkeys count: [50] The request is not supported.", e.Error())
	assert.ErrorIs(t, e, StatusNotSupported)

	bare := &Error{Kind: ErrKindRead, Msg: "Failed to get value 'x'"}
	assert.Equal(t, "Failed to get value 'x'", bare.Error())
}

func TestErrorIsMatchesKindAndCode(t *testing.T) {
	inner := &Error{Kind: ErrKindRead, Code: 2, Msg: "Failed to get value 'b'", Err: StatusFileNotFound}
	outer := &Error{Kind: ErrKindBatchRead, Code: 2, Msg: "Failed to get multiple values", Err: inner}

	assert.True(t, errors.Is(outer, &Error{Kind: ErrKindBatchRead, Code: 2}))
	assert.True(t, errors.Is(outer, &Error{Kind: ErrKindRead, Code: 2}), "matches through Unwrap")
	assert.False(t, errors.Is(outer, &Error{Kind: ErrKindWrite, Code: 2}))
	assert.True(t, errors.Is(outer, StatusFileNotFound))
}

func TestStatusError(t *testing.T) {
	assert.Equal(t, "[259] No more data is available.", StatusNoMoreItems.Error())
	assert.Equal(t, "[4242] Some error occurred", Status(4242).Error())
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"nil", nil, StatusSuccess},
		{"status", StatusAccessDenied, StatusAccessDenied},
		{"errno", syscall.Errno(259), StatusNoMoreItems},
		{"wrapped status", fmt.Errorf("ctx: %w", StatusUnsupportedType), StatusUnsupportedType},
		{"typed error", &Error{Code: 1018}, StatusKeyDeleted},
		{"opaque", errors.New("boom"), StatusInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestErrKindString(t *testing.T) {
	assert.Equal(t, "batch-read", ErrKindBatchRead.String())
	assert.Equal(t, "ErrKind(99)", ErrKind(99).String())
}
