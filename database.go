package keepassdb

import (
	"fmt"
	"os"

	"github.com/hozn/keepassdb/crypto"
	"github.com/hozn/keepassdb/errs"
	"github.com/hozn/keepassdb/internal/pool"
	"github.com/hozn/keepassdb/lock"
	"github.com/hozn/keepassdb/model"
	"github.com/hozn/keepassdb/record"
	"github.com/hozn/keepassdb/section"
	"github.com/hozn/keepassdb/tree"
)

// Database is a decrypted, in-memory KeePass 1.x database: a group/entry
// tree under a virtual root, the header it was loaded with (or a fresh one,
// for a database created in memory), and the credentials and lock state
// needed to save it back.
type Database struct {
	header *section.Header
	root   *model.Group

	// groups and entries are the flat, depth-first pre-order lists required
	// by the file format. They are kept in sync with the tree by every
	// mutating operation and recomputed wholesale by flatten.
	groups  []*model.Group
	entries []*model.Entry

	path     string
	password string
	keyfile  []byte
	readOnly bool
	rounds   uint32

	lk *lock.Lock
}

// New returns an empty, unsaved database: a virtual root with no children,
// a fresh header, and no path. Set credentials via WithPassword/WithKeyfile
// when calling Save.
func New() *Database {
	return &Database{
		header: section.NewHeader(),
		root:   model.NewRoot(),
		rounds: section.DefaultKeyEncRounds,
	}
}

// Open reads and decrypts the database at path. Unless WithReadOnly is
// given, it also acquires the advisory file lock (WithForce overrides a
// stale one) and keeps it held until Close.
func Open(path string, opts ...Option) (*Database, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errs.ErrNotExist, path)
		}

		return nil, fmt.Errorf("keepassdb: reading %s: %w", path, err)
	}

	db, err := decode(data, cfg)
	if err != nil {
		return nil, err
	}

	db.path = path

	if !cfg.readOnly {
		db.lk = lock.New(path)
		if err := db.lk.Acquire(cfg.force); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Load decrypts a database from an in-memory byte slice (a fixture, a
// network payload). The returned handle has no path and never touches the
// file lock; Save on it requires a prior call to SaveAs to bind a path.
func Load(data []byte, opts ...Option) (*Database, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return decode(data, cfg)
}

func decode(data []byte, cfg *config) (*Database, error) {
	if cfg.password == "" && len(cfg.keyfile) == 0 {
		return nil, errs.ErrMissingCredentials
	}

	if len(data) < section.HeaderSize {
		return nil, fmt.Errorf("%w: file shorter than header", errs.ErrParse)
	}

	header, err := section.Parse(data[:section.HeaderSize])
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.DecryptPayload(header, cfg.password, cfg.keyfile, data[section.HeaderSize:])
	if err != nil {
		return nil, err
	}

	groups, consumed, err := record.ParseGroups(plaintext, int(header.NGroups))
	if err != nil {
		return nil, fmt.Errorf("keepassdb: parsing groups: %w", err)
	}

	entries, _, err := record.ParseEntries(plaintext[consumed:], int(header.NEntries))
	if err != nil {
		return nil, fmt.Errorf("keepassdb: parsing entries: %w", err)
	}

	root, err := tree.Reconstruct(groups, entries)
	if err != nil {
		return nil, err
	}

	return &Database{
		header:   header,
		root:     root,
		groups:   groups,
		entries:  entries,
		password: cfg.password,
		keyfile:  cfg.keyfile,
		readOnly: cfg.readOnly,
		rounds:   header.KeyEncRounds,
	}, nil
}

// Bytes flattens the tree, re-encrypts it with fresh seeds, and returns the
// resulting file content without writing anything to disk. Credentials
// default to the ones the database was opened or last saved with; pass
// WithPassword/WithKeyfile to change them.
func (db *Database) Bytes(opts ...Option) ([]byte, error) {
	if db.readOnly {
		return nil, errs.ErrReadOnlyDatabase
	}

	cfg, err := db.resolveSaveConfig(opts)
	if err != nil {
		return nil, err
	}

	db.groups, db.entries = tree.Flatten(db.root)

	db.header.NGroups = uint32(len(db.groups))
	db.header.NEntries = uint32(len(db.entries))
	db.header.KeyEncRounds = cfg.rounds

	if err := crypto.NewSeeds(db.header); err != nil {
		return nil, err
	}

	payload := record.EncodePayload(db.groups, db.entries)
	plaintext := append([]byte(nil), payload.Bytes()...)
	pool.PutPayloadBuffer(payload)

	ciphertext, err := crypto.EncryptPayload(db.header, cfg.password, cfg.keyfile, plaintext)
	if err != nil {
		return nil, err
	}

	db.password = cfg.password
	db.keyfile = cfg.keyfile

	return append(db.header.Bytes(), ciphertext...), nil
}

// Save writes the database to its bound path (set by Open, or by an
// earlier SaveAs). It fails with errs.ErrReadOnlyDatabase on a read-only
// handle and with errs.ErrInvalidArgument if no path is bound.
func (db *Database) Save(opts ...Option) error {
	if db.path == "" {
		return fmt.Errorf("%w: no path bound, use SaveAs", errs.ErrInvalidArgument)
	}

	return db.saveTo(db.path, opts)
}

// SaveAs writes the database to path, binding it as the database's path
// for future Save calls and transferring the file lock to the new path
// (releasing any lock held on the old one). It fails with
// errs.ErrReadOnlyDatabase on a read-only handle.
func (db *Database) SaveAs(path string, opts ...Option) error {
	return db.saveTo(path, opts)
}

func (db *Database) saveTo(path string, opts []Option) error {
	if db.readOnly {
		return errs.ErrReadOnlyDatabase
	}

	cfg, err := db.resolveSaveConfig(opts)
	if err != nil {
		return err
	}

	if path != db.path {
		if err := db.rebind(path, cfg); err != nil {
			return err
		}
	}

	data, err := db.Bytes(opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("keepassdb: writing %s: %w", path, err)
	}

	return nil
}

func (db *Database) rebind(path string, cfg *config) error {
	if db.lk != nil {
		if err := db.lk.Release(); err != nil {
			return err
		}
	}

	db.lk = lock.New(path)
	if err := db.lk.Acquire(cfg.force); err != nil {
		return err
	}

	db.path = path

	return nil
}

func (db *Database) resolveSaveConfig(opts []Option) (*config, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if cfg.password == "" {
		cfg.password = db.password
	}
	if len(cfg.keyfile) == 0 {
		cfg.keyfile = db.keyfile
	}
	if cfg.password == "" && len(cfg.keyfile) == 0 {
		return nil, errs.ErrMissingCredentials
	}
	if cfg.rounds == 0 {
		cfg.rounds = db.rounds
	}
	if cfg.rounds == 0 {
		cfg.rounds = section.DefaultKeyEncRounds
	}

	return cfg, nil
}

// Close releases the file lock, if one is held. It is safe to call on a
// read-only database or one that was never bound to a path.
func (db *Database) Close() error {
	if db.lk == nil {
		return nil
	}

	return db.lk.Release()
}

// Root returns the virtual root group. Every top-level group is one of
// its children.
func (db *Database) Root() *model.Group {
	return db.root
}

// Groups returns the flat, depth-first pre-order list of groups as of the
// last load, save, or structural mutation.
func (db *Database) Groups() []*model.Group {
	return db.groups
}

// Entries returns the flat entry list, grouped by owning group in the same
// order those groups appear in Groups.
func (db *Database) Entries() []*model.Entry {
	return db.entries
}

// Path returns the filesystem path this database is bound to, or "" if it
// was constructed with New or Load and never saved with SaveAs.
func (db *Database) Path() string {
	return db.path
}

// ReadOnly reports whether the handle rejects mutation and Save.
func (db *Database) ReadOnly() bool {
	return db.readOnly
}
