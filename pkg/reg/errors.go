package reg

import (
	"fmt"

	"github.com/joshuapare/nicpower/pkg/types"
)

// newError builds a *types.Error whose Code is the status carried by cause.
func newError(kind types.ErrKind, cause error, msg string) *types.Error {
	return &types.Error{
		Kind: kind,
		Code: uint32(types.StatusOf(cause)),
		Msg:  msg,
		Err:  cause,
	}
}

func openError(path string, cause error) *types.Error {
	return newError(types.ErrKindOpen, cause, fmt.Sprintf("Failed to open key '%s'", path))
}

func subkeyCountError(cause error) *types.Error {
	return newError(types.ErrKindSubkeyCount, cause, "Failed to get subkeys count")
}

func enumError(index uint32, cause error) *types.Error {
	return newError(types.ErrKindEnum, cause, fmt.Sprintf("Failed to get subkey name with index '%d'", index))
}

func readError(name string, cause error) *types.Error {
	return newError(types.ErrKindRead, cause, fmt.Sprintf("Failed to get value '%s'", name))
}

// batchReadError wraps the first failing single-value read.
func batchReadError(cause *types.Error) *types.Error {
	return &types.Error{
		Kind: types.ErrKindBatchRead,
		Code: cause.Code,
		Msg:  "Failed to get multiple values",
		Err:  cause,
	}
}

func writeError(subkey, name string, cause error) *types.Error {
	msg := fmt.Sprintf("Failed to set value '%s'", name)
	if subkey != "" {
		msg = fmt.Sprintf("Failed to set value '%s' of subkey '%s'", name, subkey)
	}
	return newError(types.ErrKindWrite, cause, msg)
}

func closeError(path string, cause error) *types.Error {
	return newError(types.ErrKindClose, cause, fmt.Sprintf("Failed to close key '%s'", path))
}

func rootError(sel RootKey) *types.Error {
	return newError(types.ErrKindRoot, types.StatusInvalidParameter, fmt.Sprintf("Unknown system key selector %d", int(sel)))
}

// typeMismatch reports a value whose stored type the caller cannot decode.
func typeMismatch(want string, got types.RegType, size int) error {
	return fmt.Errorf("%w: want %s, found %s (%d bytes)", types.StatusUnsupportedType, want, got, size)
}
