package reg

// RootKey selects one of the predefined registry roots.
type RootKey int

const (
	RootClassesRoot RootKey = iota + 1
	RootCurrentUser
	RootLocalMachine
	RootUsers
	RootCurrentConfig
)

// Predefined handles, identical to the HKEY_* values of the Windows API.
const (
	hkeyClassesRoot   Handle = 0x80000000
	hkeyCurrentUser   Handle = 0x80000001
	hkeyLocalMachine  Handle = 0x80000002
	hkeyUsers         Handle = 0x80000003
	hkeyCurrentConfig Handle = 0x80000005
)

type rootInfo struct {
	handle Handle
	name   string
}

var roots = map[RootKey]rootInfo{
	RootClassesRoot:   {hkeyClassesRoot, "HKEY_CLASSES_ROOT"},
	RootCurrentUser:   {hkeyCurrentUser, "HKEY_CURRENT_USER"},
	RootLocalMachine:  {hkeyLocalMachine, "HKEY_LOCAL_MACHINE"},
	RootUsers:         {hkeyUsers, "HKEY_USERS"},
	RootCurrentConfig: {hkeyCurrentConfig, "HKEY_CURRENT_CONFIG"},
}

// String returns the canonical root name, e.g. "HKEY_LOCAL_MACHINE".
func (r RootKey) String() string {
	if info, ok := roots[r]; ok {
		return info.name
	}
	return "Unknown"
}

// Handle returns the predefined handle of r, InvalidHandle if r is unknown.
func (r RootKey) Handle() Handle {
	return roots[r].handle
}

// IsPredefined reports whether h is one of the predefined root handles.
func IsPredefined(h Handle) bool {
	for _, info := range roots {
		if info.handle == h {
			return true
		}
	}
	return false
}

// RootOn returns the well-known root selected by sel, backed by f. The
// returned Key is valid, not owned, and never released by Close.
//
// An unknown selector is an error; there is no fallback root.
func RootOn(f Facility, sel RootKey) (*Key, error) {
	info, ok := roots[sel]
	if !ok {
		return nil, rootError(sel)
	}
	return &Key{fac: f, handle: info.handle, path: info.name}, nil
}

// Root returns the well-known root selected by sel on the native registry.
func Root(sel RootKey) (*Key, error) {
	return RootOn(Native(), sel)
}

// LocalMachine returns HKEY_LOCAL_MACHINE on the native registry.
//
// Roots hold no releasable resource, so every call may hand out its own Key
// and all of them stay valid for the life of the process.
func LocalMachine() *Key {
	k, _ := Root(RootLocalMachine)
	return k
}
