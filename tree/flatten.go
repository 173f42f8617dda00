package tree

import "github.com/hozn/keepassdb/model"

// Flatten rebuilds the flat, persistence-order group and entry lists by a
// depth-first pre-order walk of root's subtree: each group is visited
// before its children, and a group's entries are appended in the same walk
// as the group itself.
func Flatten(root *model.Group) (groups []*model.Group, entries []*model.Entry) {
	var walk func(g *model.Group)
	walk = func(g *model.Group) {
		if !g.IsRoot() {
			groups = append(groups, g)
			entries = append(entries, g.Entries...)
		}

		for _, child := range g.Children {
			walk(child)
		}
	}

	walk(root)

	return groups, entries
}
