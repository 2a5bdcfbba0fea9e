package reg

import (
	"github.com/joshuapare/nicpower/internal/buf"
	"github.com/joshuapare/nicpower/pkg/types"
)

// WriteU32 stores v as REG_DWORD under k.
func (k *Key) WriteU32(name string, v uint32) error {
	return k.WriteSubkeyU32("", name, v)
}

// WriteBinary stores data as REG_BINARY under k.
func (k *Key) WriteBinary(name string, data []byte) error {
	return k.WriteSubkeyBinary("", name, data)
}

// WriteSubkeyU32 stores v as REG_DWORD under the child subkey of k, which is
// created if missing. An empty subkey writes under k itself.
func (k *Key) WriteSubkeyU32(subkey, name string, v uint32) error {
	return k.setValue(subkey, name, types.REG_DWORD, buf.LE32(v))
}

// WriteSubkeyBinary stores data as REG_BINARY under the child subkey of k,
// which is created if missing. An empty subkey writes under k itself.
func (k *Key) WriteSubkeyBinary(subkey, name string, data []byte) error {
	return k.setValue(subkey, name, types.REG_BINARY, data)
}

func (k *Key) setValue(subkey, name string, typ types.RegType, data []byte) error {
	if !k.Valid() {
		return writeError(subkey, name, types.StatusInvalidHandle)
	}
	if err := k.fac.SetKeyValue(k.handle, subkey, name, typ, data); err != nil {
		return writeError(subkey, name, err)
	}
	return nil
}
