package reg

import (
	"github.com/joshuapare/nicpower/internal/winapi"
	"github.com/joshuapare/nicpower/pkg/types"
)

// Native returns the Facility backed by the operating system registry.
// Outside Windows every call fails with types.StatusCallNotImplemented.
func Native() Facility { return nativeFacility{} }

type nativeFacility struct{}

func (nativeFacility) OpenKey(parent Handle, name string, access Access) (Handle, error) {
	h, err := winapi.OpenKey(uintptr(parent), name, uint32(access))
	if err != nil {
		return InvalidHandle, err
	}
	return Handle(h), nil
}

func (nativeFacility) QueryInfoKey(h Handle) (KeyInfo, error) {
	subkeys, values, err := winapi.QueryInfoKey(uintptr(h))
	if err != nil {
		return KeyInfo{}, err
	}
	return KeyInfo{SubkeyCount: subkeys, ValueCount: values}, nil
}

func (nativeFacility) EnumKey(h Handle, index uint32) (string, error) {
	return winapi.EnumKey(uintptr(h), index)
}

func (nativeFacility) QueryValue(h Handle, name string) (types.RegType, []byte, error) {
	typ, data, err := winapi.QueryValue(uintptr(h), name)
	return types.RegType(typ), data, err
}

func (nativeFacility) SetKeyValue(h Handle, subkey, name string, typ types.RegType, data []byte) error {
	return winapi.SetKeyValue(uintptr(h), subkey, name, uint32(typ), data)
}

func (nativeFacility) CloseKey(h Handle) error {
	return winapi.CloseKey(uintptr(h))
}
