package reg

import (
	"errors"

	"github.com/joshuapare/nicpower/internal/buf"
	"github.com/joshuapare/nicpower/pkg/types"
)

// SubkeyCount returns the number of direct subkeys.
func (k *Key) SubkeyCount() (uint32, error) {
	if !k.Valid() {
		return 0, subkeyCountError(types.StatusInvalidHandle)
	}
	info, err := k.fac.QueryInfoKey(k.handle)
	if err != nil {
		return 0, subkeyCountError(err)
	}
	return info.SubkeyCount, nil
}

// SubkeyName returns the name of the subkey at index. Indices are only
// stable while the set of subkeys does not change. Past the last subkey the
// error carries ERROR_NO_MORE_ITEMS.
func (k *Key) SubkeyName(index uint32) (string, error) {
	if !k.Valid() {
		return "", enumError(index, types.StatusInvalidHandle)
	}
	name, err := k.fac.EnumKey(k.handle, index)
	if err != nil {
		return "", enumError(index, err)
	}
	return name, nil
}

// SubkeyNames returns the names of all direct subkeys in enumeration order.
// It stops at the first failure.
func (k *Key) SubkeyNames() ([]string, error) {
	n, err := k.SubkeyCount()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		name, err := k.SubkeyName(i)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// ReadU32 reads a 32-bit value. REG_DWORD and 4-byte REG_BINARY are accepted;
// anything else fails with ERROR_UNSUPPORTED_TYPE.
func (k *Key) ReadU32(name string) (uint32, error) {
	if !k.Valid() {
		return 0, readError(name, types.StatusInvalidHandle)
	}
	typ, data, err := k.fac.QueryValue(k.handle, name)
	if err != nil {
		return 0, readError(name, err)
	}
	switch {
	case typ == types.REG_DWORD && len(data) == 4:
	case typ == types.REG_BINARY && len(data) == 4:
	default:
		return 0, readError(name, typeMismatch("32-bit value", typ, len(data)))
	}
	return buf.U32LE(data), nil
}

// ReadString reads a REG_SZ value without its terminating NUL.
func (k *Key) ReadString(name string) (string, error) {
	if !k.Valid() {
		return "", readError(name, types.StatusInvalidHandle)
	}
	typ, data, err := k.fac.QueryValue(k.handle, name)
	if err != nil {
		return "", readError(name, err)
	}
	if typ != types.REG_SZ {
		return "", readError(name, typeMismatch(types.REG_SZ.String(), typ, len(data)))
	}
	s, err := buf.DecodeUTF16LE(data)
	if err != nil {
		return "", readError(name, errors.Join(types.StatusInvalidParameter, err))
	}
	return s, nil
}

// ReadU32Values reads names in order with ReadU32. It stops at the first
// failure, which it returns wrapped; no partial result is returned.
func (k *Key) ReadU32Values(names []string) ([]uint32, error) {
	return readValues(names, k.ReadU32)
}

// ReadStringValues reads names in order with ReadString. It stops at the
// first failure, which it returns wrapped; no partial result is returned.
func (k *Key) ReadStringValues(names []string) ([]string, error) {
	return readValues(names, k.ReadString)
}

func readValues[T any](names []string, read func(string) (T, error)) ([]T, error) {
	values := make([]T, len(names))
	for i, name := range names {
		v, err := read(name)
		if err != nil {
			var re *types.Error
			if !errors.As(err, &re) {
				re = readError(name, err)
			}
			return nil, batchReadError(re)
		}
		values[i] = v
	}
	return values, nil
}
