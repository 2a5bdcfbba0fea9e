//go:build windows

package winapi

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/nicpower/pkg/types"
)

var (
	modadvapi32         = windows.NewLazySystemDLL("advapi32.dll")
	procRegSetKeyValueW = modadvapi32.NewProc("RegSetKeyValueW")
)

// OpenKey calls RegOpenKeyExW.
func OpenKey(parent uintptr, subkey string, access uint32) (uintptr, error) {
	p, err := windows.UTF16PtrFromString(subkey)
	if err != nil {
		return 0, types.StatusInvalidParameter
	}
	var h windows.Handle
	if err := windows.RegOpenKeyEx(windows.Handle(parent), p, 0, access, &h); err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

// QueryInfoKey calls RegQueryInfoKeyW and returns the subkey and value counts.
func QueryInfoKey(h uintptr) (subkeys, values uint32, err error) {
	err = windows.RegQueryInfoKey(windows.Handle(h), nil, nil, nil, &subkeys, nil, nil, &values, nil, nil, nil, nil)
	return subkeys, values, err
}

// EnumKey calls RegEnumKeyExW.
func EnumKey(h uintptr, index uint32) (string, error) {
	name := make([]uint16, maxKeyNameLen+1)
	n := uint32(len(name))
	if err := windows.RegEnumKeyEx(windows.Handle(h), index, &name[0], &n, nil, nil, nil, nil); err != nil {
		return "", err
	}
	return windows.UTF16ToString(name[:n]), nil
}

// QueryValue calls RegQueryValueExW, growing the buffer until the data fits.
func QueryValue(h uintptr, name string) (uint32, []byte, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, nil, types.StatusInvalidParameter
	}
	var typ uint32
	n := uint32(initialValueBuf)
	for {
		data := make([]byte, n)
		err := windows.RegQueryValueEx(windows.Handle(h), p, nil, &typ, &data[0], &n)
		if err == nil {
			return typ, data[:n], nil
		}
		if !errors.Is(err, windows.ERROR_MORE_DATA) || n == 0 {
			return 0, nil, err
		}
	}
}

// SetKeyValue calls RegSetKeyValueW, which creates subkey when it is missing.
func SetKeyValue(h uintptr, subkey, name string, typ uint32, data []byte) error {
	if err := procRegSetKeyValueW.Find(); err != nil {
		return types.StatusCallNotImplemented
	}
	var sp *uint16
	if subkey != "" {
		p, err := windows.UTF16PtrFromString(subkey)
		if err != nil {
			return types.StatusInvalidParameter
		}
		sp = p
	}
	np, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return types.StatusInvalidParameter
	}
	var dp *byte
	if len(data) > 0 {
		dp = &data[0]
	}
	r0, _, _ := syscall.SyscallN(
		procRegSetKeyValueW.Addr(),
		h,
		uintptr(unsafe.Pointer(sp)),
		uintptr(unsafe.Pointer(np)),
		uintptr(typ),
		uintptr(unsafe.Pointer(dp)),
		uintptr(len(data)),
	)
	if r0 != 0 {
		return syscall.Errno(r0)
	}
	return nil
}

// CloseKey calls RegCloseKey.
func CloseKey(h uintptr) error {
	return windows.RegCloseKey(windows.Handle(h))
}
