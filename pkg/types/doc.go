// Package types defines the value types and the error taxonomy shared by the
// registry access layer and its callers.
//
// Errors carry the OS status code that produced them together with a message
// naming the operation and the key or value involved. Callers branch on
// ErrKind or Code rather than on message text.
//
// This package has no dependencies beyond the standard library.
package types
