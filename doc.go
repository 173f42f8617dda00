// Package keepassdb reads, mutates, and writes KeePass 1.x (".kdb") password
// databases.
//
// A Database is a decrypted in-memory view of a file: a tree of Group and
// Entry nodes under a virtual root, plus the header and credentials needed
// to save it back. Open loads and decrypts a file from disk, acquiring the
// advisory file lock for writable handles; Load does the same from an
// arbitrary byte slice (a network stream, an in-memory fixture) with no
// path and no lock. Bytes is the inverse of Load: it flattens the tree,
// re-encrypts, and returns the resulting file content without touching
// disk. Save writes that content to the handle's bound path.
//
// # Basic usage
//
//	db, err := keepassdb.Open("vault.kdb", keepassdb.WithPassword("hunter2"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	email, err := db.CreateGroup("eMail", nil)
//	entry, err := db.CreateEntry(email)
//	entry.SetTitle("Work webmail")
//	entry.SetPassword("correct horse battery staple")
//
//	if err := db.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// The package does not implement KeePass 2.x / KDBX, ciphers other than
// AES-256-CBC, or any form of multi-process mutation beyond the advisory
// lock; see the lock package for that protocol's guarantees.
package keepassdb
