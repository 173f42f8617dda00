package keepassdb

import "github.com/hozn/keepassdb/internal/options"

// config carries the credentials and flags shared by Open, Load, and Save.
// A zero config has no password, no keyfile, is not read-only, and does not
// force-override a stale lock.
type config struct {
	password string
	keyfile  []byte
	readOnly bool
	force    bool
	rounds   uint32
}

// Option configures Open, Load, Bytes, or Save.
type Option = options.Option[*config]

// WithPassword sets the database password.
func WithPassword(password string) Option {
	return options.NoError(func(c *config) { c.password = password })
}

// WithKeyfile sets the keyfile byte contents.
func WithKeyfile(keyfile []byte) Option {
	return options.NoError(func(c *config) { c.keyfile = keyfile })
}

// WithReadOnly opens the database without acquiring the file lock and
// rejects any later mutation or Save against it.
func WithReadOnly() Option {
	return options.NoError(func(c *config) { c.readOnly = true })
}

// WithForce overrides a stale lock sidecar left by a crashed process
// instead of failing with errs.ErrDatabaseAlreadyLocked.
func WithForce() Option {
	return options.NoError(func(c *config) { c.force = true })
}

// WithKeyEncRounds overrides the key-transform round count used on save.
// Load always uses the round count stored in the file's header; this only
// affects a database created fresh or re-saved with new seeds.
func WithKeyEncRounds(rounds uint32) Option {
	return options.NoError(func(c *config) { c.rounds = rounds })
}

func newConfig(opts []Option) (*config, error) {
	c := &config{}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}
