package lock

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"github.com/hozn/keepassdb/errs"
)

// Lock guards a single database path with a "<path>.lock" sidecar file.
type Lock struct {
	path     string
	fl       *flock.Flock
	acquired bool
}

// New returns a Lock for dbPath. The sidecar path is dbPath with ".lock"
// appended; nothing touches the filesystem until Acquire is called.
func New(dbPath string) *Lock {
	lockPath := dbPath + ".lock"

	return &Lock{
		path: lockPath,
		fl:   flock.New(lockPath),
	}
}

// Path returns the sidecar lock file's path.
func (l *Lock) Path() string {
	return l.path
}

// Acquire creates the sidecar and takes an OS-level advisory lock on it.
// If the sidecar already exists, Acquire fails with
// errs.ErrDatabaseAlreadyLocked unless force is true, in which case the
// stale sidecar is removed first.
func (l *Lock) Acquire(force bool) error {
	if _, err := os.Stat(l.path); err == nil {
		if !force {
			return errs.ErrDatabaseAlreadyLocked
		}

		if err := os.Remove(l.path); err != nil {
			return fmt.Errorf("lock: removing stale lock %s: %w", l.path, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("lock: stat %s: %w", l.path, err)
	}

	locked, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("lock: acquiring %s: %w", l.path, err)
	}
	if !locked {
		return errs.ErrDatabaseAlreadyLocked
	}

	l.acquired = true

	return nil
}

// Release unlocks and deletes the sidecar. Releasing a lock that was never
// acquired is a no-op.
func (l *Lock) Release() error {
	if !l.acquired {
		return nil
	}

	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("lock: releasing %s: %w", l.path, err)
	}

	l.acquired = false

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("lock: removing %s: %w", l.path, err)
	}

	return nil
}

// Acquired reports whether this Lock currently holds the sidecar.
func (l *Lock) Acquired() bool {
	return l.acquired
}
