// Package errs defines the sentinel error values returned by keepassdb.
//
// Callers compare against these with errors.Is; lower layers wrap them with
// fmt.Errorf("...: %w", errs.ErrXxx) to add context without losing identity.
package errs

import "errors"

var (
	// ErrReadOnlyDatabase is returned by any write operation attempted on a
	// database opened read-only.
	ErrReadOnlyDatabase = errors.New("database is read-only")

	// ErrInvalidDatabase is returned when the header signatures don't match.
	ErrInvalidDatabase = errors.New("not a valid KeePass database")

	// ErrDatabaseAlreadyLocked is returned when the lock sidecar already
	// exists and force was not requested.
	ErrDatabaseAlreadyLocked = errors.New("database is already locked")

	// ErrUnsupportedDatabaseVersion is returned when the header version is
	// outside the supported mask (e.g. a KeePass 2.x / KDBX file).
	ErrUnsupportedDatabaseVersion = errors.New("unsupported database version")

	// ErrUnsupportedDatabaseEncryption is returned when the header's cipher
	// flags don't include AES.
	ErrUnsupportedDatabaseEncryption = errors.New("unsupported database encryption")

	// ErrAuthenticationFailed is returned when the decrypted content's
	// SHA-256 doesn't match the header's stored hash.
	ErrAuthenticationFailed = errors.New("content hash verification failed")

	// ErrIncorrectKey is returned when decryption "succeeds" but produces
	// content that is obviously garbage (empty with nonzero group count, or
	// implausibly large).
	ErrIncorrectKey = errors.New("incorrect password or keyfile")

	// ErrParse is returned when the TLV stream, header, or tree structure is
	// malformed.
	ErrParse = errors.New("parse error")

	// ErrUnboundModel is returned when a group or entry referenced by an
	// operation is not owned by the database instance it's used with.
	ErrUnboundModel = errors.New("group or entry is not bound to this database")

	// ErrNotExist is returned when a source path does not exist.
	ErrNotExist = errors.New("database file does not exist")

	// ErrMissingCredentials is returned when neither a password nor a
	// keyfile was supplied to load or save.
	ErrMissingCredentials = errors.New("password and/or keyfile is required")

	// ErrInvalidArgument covers API misuse: wrong argument kind, a group
	// used as its own new parent or moved into its own subtree, removing the
	// virtual root, and similar.
	ErrInvalidArgument = errors.New("invalid argument")
)
