// Package lock implements the advisory file lock that guards a writable
// database handle: a zero-byte "<dbfile>.lock" sidecar, created on acquire
// and deleted on release. It is cooperative, not a crash-safety mechanism —
// any peer not honoring the same convention can still write to the file.
package lock
