package reg

import (
	"github.com/joshuapare/nicpower/pkg/types"
)

// Separator joins key names into a path.
const Separator = `\`

// noCopy makes `go vet` (copylocks) reject copies of Key values.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Key is an open registry key.
//
// A Key either owns its handle (opened through OpenKey) or aliases a
// well-known root (owned is false). Only owned keys release their handle.
// An invalid Key has handle == InvalidHandle; its path is still the one it
// was opened with.
type Key struct {
	noCopy noCopy

	fac    Facility
	handle Handle
	owned  bool
	path   string
	err    *types.Error // open failure, nil otherwise
}

// OpenOptions controls how OpenKeyWith opens a subkey.
type OpenOptions struct {
	// ReadOnly requests KEY_READ instead of KEY_READ|KEY_WRITE. Writes through
	// such a key fail with ERROR_ACCESS_DENIED.
	ReadOnly bool
}

func (o *OpenOptions) access() Access {
	if o != nil && o.ReadOnly {
		return AccessRead
	}
	return AccessReadWrite
}

// OpenKey opens name relative to parent with read and write access.
// See OpenKeyWith.
func OpenKey(parent *Key, name string) *Key {
	return OpenKeyWith(parent, name, nil)
}

// OpenKeyWith opens (never creates) name relative to parent.
//
// An empty name on a well-known root returns an alias of that root: same
// handle, same path, not owned. Otherwise the result owns a new handle and
// its path is parent's path joined with name. On failure the result is
// invalid and Err reports why; check Valid before use.
func OpenKeyWith(parent *Key, name string, opts *OpenOptions) *Key {
	if parent == nil {
		return &Key{path: name, err: openError(name, types.StatusInvalidHandle)}
	}
	if name == "" && parent.IsRoot() {
		return &Key{fac: parent.fac, handle: parent.handle, path: parent.path}
	}

	k := &Key{fac: parent.fac, path: joinPath(parent.path, name)}
	if !parent.Valid() {
		k.err = openError(k.path, types.StatusInvalidHandle)
		return k
	}

	h, err := parent.fac.OpenKey(parent.handle, name, opts.access())
	if err != nil {
		k.err = openError(k.path, err)
		return k
	}
	if h == InvalidHandle {
		k.err = openError(k.path, types.StatusInvalidHandle)
		return k
	}
	k.handle = h
	k.owned = true
	return k
}

func joinPath(parent, name string) string {
	if name == "" {
		return parent
	}
	if parent == "" {
		return name
	}
	return parent + Separator + name
}

// Close releases the handle if k owns it. Afterwards k is invalid. Closing
// a root alias, an invalid key or an already closed key does nothing.
//
// Close failures are returned but leave k invalid all the same.
func (k *Key) Close() error {
	if k == nil || !k.owned || !k.Valid() {
		return nil
	}
	h := k.handle
	k.handle = InvalidHandle
	k.owned = false
	if err := k.fac.CloseKey(h); err != nil {
		return closeError(k.path, err)
	}
	return nil
}

// Move transfers k's handle, ownership and path to a new Key. k is left
// invalid and not owned.
func (k *Key) Move() *Key {
	dst := &Key{fac: k.fac, handle: k.handle, owned: k.owned, path: k.path, err: k.err}
	k.handle = InvalidHandle
	k.owned = false
	return dst
}

// Assign releases the handle k currently owns, then takes over src's
// handle, ownership and path. src is left invalid and not owned. The
// returned error is the release failure of k's previous handle, if any;
// the transfer happens regardless.
func (k *Key) Assign(src *Key) error {
	if k == src {
		return nil
	}
	err := k.Close()
	k.fac = src.fac
	k.handle = src.handle
	k.owned = src.owned
	k.path = src.path
	k.err = src.err
	src.handle = InvalidHandle
	src.owned = false
	return err
}

// Valid reports whether k holds a handle.
func (k *Key) Valid() bool {
	return k != nil && k.handle != InvalidHandle
}

// Owned reports whether Close releases k's handle.
func (k *Key) Owned() bool {
	return k != nil && k.owned
}

// IsRoot reports whether k is (an alias of) a well-known root.
func (k *Key) IsRoot() bool {
	return k != nil && !k.owned && IsPredefined(k.handle)
}

// Path returns the logical path k was opened with, valid or not.
func (k *Key) Path() string {
	if k == nil {
		return ""
	}
	return k.path
}

// Handle returns the raw handle, InvalidHandle when k is not open.
func (k *Key) Handle() Handle {
	if k == nil {
		return InvalidHandle
	}
	return k.handle
}

// Err returns the failure that left k invalid at open time, or nil.
func (k *Key) Err() error {
	if k == nil || k.err == nil {
		return nil
	}
	return k.err
}

func (k *Key) String() string { return k.Path() }
