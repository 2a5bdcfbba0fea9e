// Package winapi calls the Windows registry API.
//
// Handles are passed as uintptr so callers can wrap them in their own types.
// Errors are syscall.Errno values carrying the Win32 status code. On other
// platforms every call fails with types.StatusCallNotImplemented.
package winapi

// maxKeyNameLen is the registry limit on a key name, in UTF-16 code units.
const maxKeyNameLen = 255

// initialValueBuf is the first buffer size tried by QueryValue; larger values
// are retried with the size reported by the OS.
const initialValueBuf = 128
