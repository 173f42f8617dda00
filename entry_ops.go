package keepassdb

import (
	"fmt"

	"github.com/hozn/keepassdb/errs"
	"github.com/hozn/keepassdb/internal/options"
	"github.com/hozn/keepassdb/model"
)

// CreateEntry creates a new entry owned by group and returns it. group must
// be a real, owned group — the virtual root holds no entries.
func (db *Database) CreateEntry(group *model.Group, opts ...EntryOption) (*model.Entry, error) {
	if db.readOnly {
		return nil, errs.ErrReadOnlyDatabase
	}
	if group == nil || group == db.root || !db.ownsGroup(group) {
		return nil, fmt.Errorf("%w: owning group", errs.ErrUnboundModel)
	}

	e := model.NewEntry(group)
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	group.Entries = append(group.Entries, e)
	db.refresh()

	return e, nil
}

// RemoveEntry detaches entry from its owning group.
func (db *Database) RemoveEntry(entry *model.Entry) error {
	if db.readOnly {
		return errs.ErrReadOnlyDatabase
	}
	if !db.ownsEntry(entry) {
		return errs.ErrUnboundModel
	}

	group := entry.Group
	group.Entries = removeEntry(group.Entries, entry)
	entry.Group = nil

	db.refresh()

	return nil
}

// MoveEntry detaches entry from its current group and reattaches it to
// newGroup at the given index (appended if index is omitted or out of
// range), updating entry.GroupID to match.
func (db *Database) MoveEntry(entry *model.Entry, newGroup *model.Group, index ...int) error {
	if db.readOnly {
		return errs.ErrReadOnlyDatabase
	}
	if !db.ownsEntry(entry) {
		return errs.ErrUnboundModel
	}
	if newGroup == nil || newGroup == db.root || !db.ownsGroup(newGroup) {
		return fmt.Errorf("%w: new group", errs.ErrUnboundModel)
	}

	oldGroup := entry.Group
	oldGroup.Entries = removeEntry(oldGroup.Entries, entry)

	entry.Group = newGroup
	entry.GroupID = newGroup.ID
	newGroup.Entries = insertEntryAt(newGroup.Entries, entry, index)
	entry.Touch()

	db.refresh()

	return nil
}

func (db *Database) ownsEntry(e *model.Entry) bool {
	if e == nil {
		return false
	}
	for _, x := range db.entries {
		if x == e {
			return true
		}
	}

	return false
}

func removeEntry(entries []*model.Entry, e *model.Entry) []*model.Entry {
	for i, x := range entries {
		if x == e {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}

	return entries
}

func insertEntryAt(entries []*model.Entry, e *model.Entry, index []int) []*model.Entry {
	if len(index) == 0 || index[0] < 0 || index[0] >= len(entries) {
		return append(entries, e)
	}

	out := make([]*model.Entry, 0, len(entries)+1)
	out = append(out, entries[:index[0]]...)
	out = append(out, e)
	out = append(out, entries[index[0]:]...)

	return out
}
