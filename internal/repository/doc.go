// Package repository defines the data access interfaces for notedeck.
//
// The actual implementation is in the sqlite subpackage, which creates the
// schema on open and applies forward-only column additions so a database
// from an older deployment converges without a migration framework.
//
// Every repository operation is a single statement or transaction; no state
// is held between calls and the underlying handle is released on Close
// regardless of how individual operations ended.
package repository
