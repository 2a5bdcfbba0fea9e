// Package fakereg provides an in-memory reg.Facility for tests.
//
// Paths are full registry paths starting with the root name, for example
// `HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet`. Names compare
// case-insensitively and subkeys enumerate in sorted order, as on Windows.
// Every call is recorded so tests can assert on handle lifetimes.
package fakereg

import (
	"bytes"
	"sort"
	"strings"
	"sync"

	"github.com/joshuapare/nicpower/internal/buf"
	"github.com/joshuapare/nicpower/pkg/reg"
	"github.com/joshuapare/nicpower/pkg/types"
)

// Value is a stored registry value.
type Value struct {
	Type types.RegType
	Data []byte
}

type node struct {
	name     string
	path     string
	children map[string]*node // keyed by lower-case name
	values   map[string]Value // keyed by lower-case name
}

func newNode(name, path string) *node {
	return &node{
		name:     name,
		path:     path,
		children: make(map[string]*node),
		values:   make(map[string]Value),
	}
}

func (n *node) child(name string, create bool) *node {
	key := strings.ToLower(name)
	if c, ok := n.children[key]; ok {
		return c
	}
	if !create {
		return nil
	}
	c := newNode(name, n.path+reg.Separator+name)
	n.children[key] = c
	return c
}

func (n *node) sortedChildren() []*node {
	out := make([]*node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].name) < strings.ToLower(out[j].name)
	})
	return out
}

type openKey struct {
	node   *node
	access reg.Access
}

// Registry is an in-memory registry implementing reg.Facility.
type Registry struct {
	mu sync.Mutex

	roots   map[reg.Handle]*node
	handles map[reg.Handle]*openKey
	next    reg.Handle

	failures map[string]error

	closeErr error

	opens      int
	closes     map[reg.Handle]int
	rootCloses int
	queried    []string
}

var _ reg.Facility = (*Registry)(nil)

// New returns an empty registry containing only the well-known roots.
func New() *Registry {
	r := &Registry{
		roots:    make(map[reg.Handle]*node),
		handles:  make(map[reg.Handle]*openKey),
		next:     0x1000,
		failures: make(map[string]error),
		closes:   make(map[reg.Handle]int),
	}
	for _, sel := range []reg.RootKey{
		reg.RootClassesRoot,
		reg.RootCurrentUser,
		reg.RootLocalMachine,
		reg.RootUsers,
		reg.RootCurrentConfig,
	} {
		r.roots[sel.Handle()] = newNode(sel.String(), sel.String())
	}
	return r
}

// -----------------------------------------------------------------------------
// Population
// -----------------------------------------------------------------------------

// CreateKey creates every missing key along path.
func (r *Registry) CreateKey(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.walk(path, true)
}

// SetValue stores a raw value, creating the key if needed.
func (r *Registry) SetValue(path, name string, v Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.walk(path, true)
	n.values[strings.ToLower(name)] = Value{Type: v.Type, Data: bytes.Clone(v.Data)}
}

// SetU32 stores a REG_DWORD value.
func (r *Registry) SetU32(path, name string, v uint32) {
	r.SetValue(path, name, Value{Type: types.REG_DWORD, Data: buf.LE32(v)})
}

// SetBinary stores a REG_BINARY value.
func (r *Registry) SetBinary(path, name string, data []byte) {
	r.SetValue(path, name, Value{Type: types.REG_BINARY, Data: data})
}

// SetString stores a REG_SZ value.
func (r *Registry) SetString(path, name, s string) {
	data, err := buf.EncodeUTF16LE(s)
	if err != nil {
		panic(err)
	}
	r.SetValue(path, name, Value{Type: types.REG_SZ, Data: data})
}

// -----------------------------------------------------------------------------
// Failure injection
// -----------------------------------------------------------------------------

// FailOpen makes OpenKey of path fail with err.
func (r *Registry) FailOpen(path string, err error) { r.fail("open", path, "", err) }

// FailInfo makes QueryInfoKey on path fail with err.
func (r *Registry) FailInfo(path string, err error) { r.fail("info", path, "", err) }

// FailEnum makes EnumKey on path fail with err.
func (r *Registry) FailEnum(path string, err error) { r.fail("enum", path, "", err) }

// FailValue makes QueryValue of name under path fail with err.
func (r *Registry) FailValue(path, name string, err error) { r.fail("value", path, name, err) }

// FailSet makes SetKeyValue of name under path fail with err. path is the
// key receiving the value, after any subkey is applied.
func (r *Registry) FailSet(path, name string, err error) { r.fail("set", path, name, err) }

// FailClose makes every CloseKey of a non-root handle fail with err. The
// handle is released anyway, as RegCloseKey does.
func (r *Registry) FailClose(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closeErr = err
}

func (r *Registry) fail(op, path, name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[failureKey(op, path, name)] = err
}

func (r *Registry) failure(op, path, name string) error {
	return r.failures[failureKey(op, path, name)]
}

func failureKey(op, path, name string) string {
	return op + "|" + strings.ToLower(path) + "|" + strings.ToLower(name)
}

// -----------------------------------------------------------------------------
// Inspection
// -----------------------------------------------------------------------------

// Value returns the value stored under path.
func (r *Registry) Value(path, name string) (Value, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.walk(path, false)
	if n == nil {
		return Value{}, false
	}
	v, ok := n.values[strings.ToLower(name)]
	return v, ok
}

// HasKey reports whether path exists.
func (r *Registry) HasKey(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.walk(path, false) != nil
}

// Opens returns the number of successful OpenKey calls.
func (r *Registry) Opens() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opens
}

// Closes returns how many times CloseKey was called for h.
func (r *Registry) Closes(h reg.Handle) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closes[h]
}

// RootCloses returns how many times CloseKey was called with a predefined
// root handle. Well-behaved callers never do this.
func (r *Registry) RootCloses() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rootCloses
}

// OpenHandles returns the number of handles opened and not yet closed.
func (r *Registry) OpenHandles() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

// Queried returns the value names passed to QueryValue, in call order.
func (r *Registry) Queried() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queried...)
}

// -----------------------------------------------------------------------------
// reg.Facility
// -----------------------------------------------------------------------------

// OpenKey implements reg.Facility.
func (r *Registry) OpenKey(parent reg.Handle, name string, access reg.Access) (reg.Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, _, err := r.resolve(parent)
	if err != nil {
		return reg.InvalidHandle, err
	}
	target := p.path
	if name != "" {
		target += reg.Separator + name
	}
	if err := r.failure("open", target, ""); err != nil {
		return reg.InvalidHandle, err
	}
	n := p
	if name != "" {
		n = descend(p, name, false)
	}
	if n == nil {
		return reg.InvalidHandle, types.StatusFileNotFound
	}
	h := r.next
	r.next += 4
	r.handles[h] = &openKey{node: n, access: access}
	r.opens++
	return h, nil
}

// QueryInfoKey implements reg.Facility.
func (r *Registry) QueryInfoKey(h reg.Handle) (reg.KeyInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, _, err := r.resolve(h)
	if err != nil {
		return reg.KeyInfo{}, err
	}
	if err := r.failure("info", n.path, ""); err != nil {
		return reg.KeyInfo{}, err
	}
	return reg.KeyInfo{SubkeyCount: uint32(len(n.children)), ValueCount: uint32(len(n.values))}, nil
}

// EnumKey implements reg.Facility.
func (r *Registry) EnumKey(h reg.Handle, index uint32) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, _, err := r.resolve(h)
	if err != nil {
		return "", err
	}
	if err := r.failure("enum", n.path, ""); err != nil {
		return "", err
	}
	children := n.sortedChildren()
	if int(index) >= len(children) {
		return "", types.StatusNoMoreItems
	}
	return children[index].name, nil
}

// QueryValue implements reg.Facility.
func (r *Registry) QueryValue(h reg.Handle, name string) (types.RegType, []byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queried = append(r.queried, name)
	n, _, err := r.resolve(h)
	if err != nil {
		return types.REG_NONE, nil, err
	}
	if err := r.failure("value", n.path, name); err != nil {
		return types.REG_NONE, nil, err
	}
	v, ok := n.values[strings.ToLower(name)]
	if !ok {
		return types.REG_NONE, nil, types.StatusFileNotFound
	}
	return v.Type, bytes.Clone(v.Data), nil
}

// SetKeyValue implements reg.Facility.
func (r *Registry) SetKeyValue(h reg.Handle, subkey, name string, typ types.RegType, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, access, err := r.resolve(h)
	if err != nil {
		return err
	}
	if access&reg.AccessWrite != reg.AccessWrite {
		return types.StatusAccessDenied
	}
	target := n.path
	if subkey != "" {
		target += reg.Separator + subkey
	}
	if err := r.failure("set", target, name); err != nil {
		return err
	}
	if subkey != "" {
		n = descend(n, subkey, true)
	}
	n.values[strings.ToLower(name)] = Value{Type: typ, Data: bytes.Clone(data)}
	return nil
}

// CloseKey implements reg.Facility.
func (r *Registry) CloseKey(h reg.Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closes[h]++
	if _, ok := r.roots[h]; ok {
		r.rootCloses++
		return nil
	}
	if _, ok := r.handles[h]; !ok {
		return types.StatusInvalidHandle
	}
	delete(r.handles, h)
	return r.closeErr
}

// resolve maps a handle to its node and access mask.
func (r *Registry) resolve(h reg.Handle) (*node, reg.Access, error) {
	if n, ok := r.roots[h]; ok {
		return n, reg.AccessReadWrite, nil
	}
	if k, ok := r.handles[h]; ok {
		return k.node, k.access, nil
	}
	return nil, 0, types.StatusInvalidHandle
}

// walk resolves a full path starting with a root name.
func (r *Registry) walk(path string, create bool) *node {
	rootName, rest, _ := strings.Cut(path, reg.Separator)
	for _, n := range r.roots {
		if strings.EqualFold(n.name, rootName) {
			if rest == "" {
				return n
			}
			return descend(n, rest, create)
		}
	}
	return nil
}

func descend(n *node, rel string, create bool) *node {
	for _, part := range strings.Split(rel, reg.Separator) {
		if part == "" {
			continue
		}
		if n = n.child(part, create); n == nil {
			return nil
		}
	}
	return n
}
