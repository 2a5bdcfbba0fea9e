package types

import (
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors by the operation that produced them.
type ErrKind int

const (
	ErrKindNone        ErrKind = iota // zero value, no error
	ErrKindOpen                       // key open failed
	ErrKindSubkeyCount                // subkey count query failed
	ErrKindEnum                       // subkey enumeration failed (incl. no more items)
	ErrKindRead                       // single value read failed (missing / type mismatch)
	ErrKindBatchRead                  // multi value read failed, wraps the first ErrKindRead
	ErrKindWrite                      // single value write failed
	ErrKindClose                      // handle release failed
	ErrKindRoot                       // unknown well-known root selector
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindNone:
		return "none"
	case ErrKindOpen:
		return "open"
	case ErrKindSubkeyCount:
		return "subkey-count"
	case ErrKindEnum:
		return "enum"
	case ErrKindRead:
		return "read"
	case ErrKindBatchRead:
		return "batch-read"
	case ErrKindWrite:
		return "write"
	case ErrKindClose:
		return "close"
	case ErrKindRoot:
		return "root"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a registry failure: the OS status code, a message naming the
// operation and the key/value involved, and an optional underlying cause.
//
// The zero Error means "no error".
type Error struct {
	Kind ErrKind
	Code uint32 // OS status of the failing call
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsZero reports whether e represents "no error".
func (e *Error) IsZero() bool {
	return e == nil || (e.Code == uint32(StatusSuccess) && e.Msg == "" && e.Err == nil)
}

// Is matches another *Error by Kind and Code, so callers can compare against a
// template such as &Error{Kind: ErrKindEnum, Code: uint32(StatusNoMoreItems)}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// -----------------------------------------------------------------------------
// Value types
// -----------------------------------------------------------------------------

// RegType enumerates the registry value types this module reads or writes.
// (The numbers align with Windows definitions.)
type RegType uint32

const (
	REG_NONE      RegType = 0
	REG_SZ        RegType = 1
	REG_EXPAND_SZ RegType = 2
	REG_BINARY    RegType = 3
	REG_DWORD     RegType = 4
	REG_DWORD_BE  RegType = 5
	REG_MULTI_SZ  RegType = 7
	REG_QWORD     RegType = 11
)

// String implements the Stringer interface for RegType
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_DWORD_BE:
		return "REG_DWORD_BE"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", int32(t))
	}
}
