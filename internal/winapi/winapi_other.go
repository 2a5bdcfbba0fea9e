//go:build !windows

package winapi

import "github.com/joshuapare/nicpower/pkg/types"

// OpenKey reports that the registry is unavailable on this platform.
func OpenKey(parent uintptr, subkey string, access uint32) (uintptr, error) {
	return 0, types.StatusCallNotImplemented
}

// QueryInfoKey reports that the registry is unavailable on this platform.
func QueryInfoKey(h uintptr) (subkeys, values uint32, err error) {
	return 0, 0, types.StatusCallNotImplemented
}

// EnumKey reports that the registry is unavailable on this platform.
func EnumKey(h uintptr, index uint32) (string, error) {
	return "", types.StatusCallNotImplemented
}

// QueryValue reports that the registry is unavailable on this platform.
func QueryValue(h uintptr, name string) (uint32, []byte, error) {
	return 0, nil, types.StatusCallNotImplemented
}

// SetKeyValue reports that the registry is unavailable on this platform.
func SetKeyValue(h uintptr, subkey, name string, typ uint32, data []byte) error {
	return types.StatusCallNotImplemented
}

// CloseKey reports that the registry is unavailable on this platform.
func CloseKey(h uintptr) error {
	return types.StatusCallNotImplemented
}
