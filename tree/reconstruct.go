package tree

import (
	"fmt"

	"github.com/hozn/keepassdb/errs"
	"github.com/hozn/keepassdb/model"
)

// Reconstruct infers parent/children links for a flat, level-tagged
// sequence of groups using a single-pass parent stack, then binds each
// entry to its owning group by matching entry.GroupID to group.ID.
//
// groups[0].Level must be 0. An entry whose GroupID matches no group is an
// orphan and fails the reconstruction; KeePassX historically attached
// orphans to the first group, but this implementation treats it as the
// parse error it's documented as in the error-kind table.
func Reconstruct(groups []*model.Group, entries []*model.Entry) (*model.Group, error) {
	root := model.NewRoot()

	if len(groups) == 0 {
		return root, nil
	}

	if groups[0].Level != 0 {
		return nil, fmt.Errorf("%w: first group has level %d, want 0", errs.ErrParse, groups[0].Level)
	}

	currentParent := root
	parentStack := []*model.Group{root}

	var prev *model.Group
	for _, g := range groups {
		if prev != nil {
			switch {
			case g.Level > prev.Level:
				parentStack = append(parentStack, prev)
				currentParent = prev
			case g.Level < prev.Level:
				for len(parentStack) > 1 && g.Level <= currentParent.Level {
					parentStack = parentStack[:len(parentStack)-1]
					currentParent = parentStack[len(parentStack)-1]
				}
			}
		}

		g.Parent = currentParent
		currentParent.Children = append(currentParent.Children, g)
		prev = g
	}

	byID := make(map[uint32]*model.Group, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}

	for _, e := range entries {
		g, ok := byID[e.GroupID]
		if !ok {
			return nil, fmt.Errorf("%w: entry %s references unknown group_id %d", errs.ErrParse, e.UUID, e.GroupID)
		}

		e.Group = g
		g.Entries = append(g.Entries, e)
	}

	return root, nil
}
