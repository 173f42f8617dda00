package keepassdb

import (
	"fmt"

	"github.com/hozn/keepassdb/errs"
	"github.com/hozn/keepassdb/internal/options"
	"github.com/hozn/keepassdb/model"
	"github.com/hozn/keepassdb/tree"
)

// CreateGroup creates a new group titled title under parent and returns it.
// A nil parent attaches the group to the root as a new top-level group,
// appended after the existing top-level groups. A non-nil parent must
// already belong to this database; the new group becomes its first child,
// which places it immediately after parent in the flat, depth-first order
// the file format requires.
func (db *Database) CreateGroup(title string, parent *model.Group, opts ...GroupOption) (*model.Group, error) {
	if db.readOnly {
		return nil, errs.ErrReadOnlyDatabase
	}

	if parent == nil {
		parent = db.root
	} else if !db.ownsGroup(parent) {
		return nil, fmt.Errorf("%w: parent group", errs.ErrUnboundModel)
	}

	g := model.NewGroup(title)
	g.ID = db.nextGroupID()
	g.Level = parent.Level + 1
	g.Parent = parent

	if err := options.Apply(g, opts...); err != nil {
		return nil, err
	}

	if parent == db.root {
		parent.Children = append(parent.Children, g)
	} else {
		parent.Children = append([]*model.Group{g}, parent.Children...)
	}

	db.refresh()

	return g, nil
}

// RemoveGroup detaches group and its entire subtree — descendant groups and
// all their entries — from the database.
func (db *Database) RemoveGroup(group *model.Group) error {
	if db.readOnly {
		return errs.ErrReadOnlyDatabase
	}
	if group == db.root {
		return fmt.Errorf("%w: cannot remove the virtual root", errs.ErrInvalidArgument)
	}
	if !db.ownsGroup(group) {
		return errs.ErrUnboundModel
	}

	parent := group.Parent
	parent.Children = removeGroup(parent.Children, group)
	group.Parent = nil

	db.refresh()

	return nil
}

// MoveGroup detaches group from its current parent and reattaches it under
// newParent at the given child index (appended if index is omitted or out
// of range), rewriting group's level and the levels of its entire subtree
// to match its new depth. It rejects moving a group under itself, under
// its own descendant, or involving a group not owned by this database.
func (db *Database) MoveGroup(group, newParent *model.Group, index ...int) error {
	if db.readOnly {
		return errs.ErrReadOnlyDatabase
	}
	if group == db.root || !db.ownsGroup(group) {
		return errs.ErrUnboundModel
	}
	if !db.ownsGroup(newParent) {
		return fmt.Errorf("%w: new parent group", errs.ErrUnboundModel)
	}
	if group == newParent {
		return fmt.Errorf("%w: a group cannot become its own parent", errs.ErrInvalidArgument)
	}
	if isAncestorOf(group, newParent) {
		return fmt.Errorf("%w: cannot move a group into its own subtree", errs.ErrInvalidArgument)
	}

	oldParent := group.Parent
	oldParent.Children = removeGroup(oldParent.Children, group)

	group.Parent = newParent
	newParent.Children = insertGroupAt(newParent.Children, group, index)

	rewriteLevels(group, newParent.Level+1)
	group.Touch()

	db.refresh()

	return nil
}

// nextGroupID returns one past the largest group id currently in the
// database, or 1 if there are none.
func (db *Database) nextGroupID() uint32 {
	var max uint32
	for _, g := range db.groups {
		if g.ID > max {
			max = g.ID
		}
	}

	return max + 1
}

func (db *Database) ownsGroup(g *model.Group) bool {
	if g == nil {
		return false
	}
	if g == db.root {
		return true
	}
	for _, x := range db.groups {
		if x == g {
			return true
		}
	}

	return false
}

// refresh recomputes the flat group/entry lists from the tree. Every
// structural mutation ends with this instead of hand-maintaining the flat
// lists in place, so the single depth-first walk in the tree package stays
// the one place that ordering is decided.
func (db *Database) refresh() {
	db.groups, db.entries = tree.Flatten(db.root)
}

func removeGroup(children []*model.Group, g *model.Group) []*model.Group {
	for i, c := range children {
		if c == g {
			return append(children[:i:i], children[i+1:]...)
		}
	}

	return children
}

func insertGroupAt(children []*model.Group, g *model.Group, index []int) []*model.Group {
	if len(index) == 0 || index[0] < 0 || index[0] >= len(children) {
		return append(children, g)
	}

	out := make([]*model.Group, 0, len(children)+1)
	out = append(out, children[:index[0]]...)
	out = append(out, g)
	out = append(out, children[index[0]:]...)

	return out
}

// isAncestorOf reports whether candidate is g or lies within g's subtree.
func isAncestorOf(g, candidate *model.Group) bool {
	if g == candidate {
		return true
	}
	for _, c := range g.Children {
		if isAncestorOf(c, candidate) {
			return true
		}
	}

	return false
}

func rewriteLevels(g *model.Group, level int16) {
	g.Level = level
	for _, c := range g.Children {
		rewriteLevels(c, level+1)
	}
}
