// Package device reads and tunes the power settings of device instances
// registered under a device setup class.
package device

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/joshuapare/nicpower/pkg/reg"
)

// NetworkAdapterClass is the setup class GUID of network adapters.
var NetworkAdapterClass = uuid.MustParse("4d36e96c-e325-11ce-bfc1-08002be10318")

// classRoot holds one subkey per device setup class, under HKEY_LOCAL_MACHINE.
const classRoot = `SYSTEM\CurrentControlSet\Control\Class`

// ClassPath returns the path of the class key relative to HKEY_LOCAL_MACHINE,
// e.g. SYSTEM\CurrentControlSet\Control\Class\{4d36e96c-e325-11ce-bfc1-08002be10318}.
func ClassPath(class uuid.UUID) string {
	return classRoot + reg.Separator + "{" + class.String() + "}"
}

// ParseClass parses a class GUID with or without braces.
func ParseClass(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid device class %q: %w", s, err)
	}
	return id, nil
}

// OpenClass opens the class key of class under root.
func OpenClass(root *reg.Key, class uuid.UUID, opts *reg.OpenOptions) (*reg.Key, error) {
	k := reg.OpenKeyWith(root, ClassPath(class), opts)
	if !k.Valid() {
		return nil, fmt.Errorf("could not open a key %s: %w", k.Path(), k.Err())
	}
	return k, nil
}
