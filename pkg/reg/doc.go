/*
Package reg wraps native registry key handles.

A Key owns at most one open handle. Keys are obtained either from one of the
well-known roots, which are never closed, or by opening a subkey relative to
another Key. Every fallible operation returns an error instead of panicking;
the error is a *types.Error carrying the OS status code and a message naming
the operation and the key or value involved.

# Opening keys

	root := reg.LocalMachine()
	class := reg.OpenKey(root, `SYSTEM\CurrentControlSet\Control\Class`)
	if !class.Valid() {
	    return class.Err()
	}
	defer class.Close()

OpenKey never fails outright. A key that could not be opened is invalid,
still reports the path it attempted, and exposes the failure through Err.

# Ownership

Keys must not be copied; pass *Key around. Ownership moves with Move (a new
Key takes the handle) or Assign (an existing Key releases its own handle, then
takes the source's). The source is left invalid in both cases.

	kept := tmp.Move() // tmp is now invalid, kept owns the handle

# Values

Reads accept REG_DWORD (and 4-byte REG_BINARY) for u32 and REG_SZ for
strings. The batch readers stop at the first failing name and return no partial
results:

	vals, err := ps.ReadU32Values([]string{"ConservationIdleTime", "IdlePowerState"})

Writes are independent calls; a sequence of writes is not a transaction.

# Concurrency

A Key is not safe for concurrent use. Distinct keys are independent.
*/
package reg
