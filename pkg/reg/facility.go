package reg

import (
	"github.com/joshuapare/nicpower/pkg/types"
)

//go:generate mockgen -source=facility.go -destination=mocks/facility_mock.go -package=mocks Facility

// Handle is an opaque OS registry handle.
type Handle uintptr

// InvalidHandle marks a Key that is not open: never opened, failed to open,
// moved from, or closed.
const InvalidHandle Handle = 0

// Access is a registry access mask (REGSAM).
type Access uint32

const (
	AccessRead      Access = 0x20019 // KEY_READ
	AccessWrite     Access = 0x20006 // KEY_WRITE
	AccessReadWrite        = AccessRead | AccessWrite
)

// KeyInfo is the subset of key metadata reported by QueryInfoKey.
type KeyInfo struct {
	SubkeyCount uint32
	ValueCount  uint32
}

// Facility is the OS registry API a Key delegates to. Implementations return
// types.Status or syscall.Errno values so the status code survives.
type Facility interface {
	// OpenKey opens (never creates) name relative to parent. An empty name
	// opens a new handle to parent itself.
	OpenKey(parent Handle, name string, access Access) (Handle, error)

	// QueryInfoKey reports subkey and value counts.
	QueryInfoKey(h Handle) (KeyInfo, error)

	// EnumKey returns the name of the index'th subkey, or
	// types.StatusNoMoreItems when index is out of range.
	EnumKey(h Handle, index uint32) (string, error)

	// QueryValue returns the raw type and data of a named value.
	QueryValue(h Handle, name string) (types.RegType, []byte, error)

	// SetKeyValue writes a value under the subkey of h, creating the subkey
	// when it does not exist. An empty subkey targets h.
	SetKeyValue(h Handle, subkey, name string, typ types.RegType, data []byte) error

	// CloseKey releases h.
	CloseKey(h Handle) error
}
