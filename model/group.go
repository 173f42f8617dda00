package model

import "time"

// RootLevel is the level of the virtual root; every top-level group sits at
// level 0, one below it.
const RootLevel = -1

// InvalidGroupID and the 0xFFFFFFFF sentinel are never valid Group.ID values.
const InvalidGroupID uint32 = 0

// Group is a folder node in the database's hierarchy.
type Group struct {
	ID    uint32
	Title string
	Icon  uint32 // default 1
	Level int16  // root is -1, top-level groups are 0, children are parent.Level+1

	Created  time.Time
	Modified time.Time
	Accessed time.Time
	Expires  time.Time

	// Flags has no defined semantics; it round-trips opaquely.
	Flags uint32

	Parent   *Group // nil only for the virtual root
	Children []*Group
	Entries  []*Entry
}

// NewRoot constructs the virtual root group: not persisted, level -1, no
// parent, holds the database's top-level groups.
func NewRoot() *Group {
	return &Group{
		Title: "Root Group",
		Level: RootLevel,
	}
}

// NewGroup constructs a Group with defaults: icon 1, created/modified/accessed
// set to now, and expires set to NeverExpires. Callers attach it to a parent
// through the database façade, which also assigns ID and Level.
func NewGroup(title string) *Group {
	t := now()

	return &Group{
		Title:    title,
		Icon:     1,
		Created:  t,
		Modified: t,
		Accessed: t,
		Expires:  NeverExpires,
	}
}

// IsRoot reports whether g is the virtual root.
func (g *Group) IsRoot() bool {
	return g.Level == RootLevel && g.Parent == nil
}

// touch stamps Modified (and Accessed, if it's older) to now.
func (g *Group) touch() {
	t := now()
	g.Modified = t
	if g.Accessed.Before(t) {
		g.Accessed = t
	}
}

// Touch stamps Modified (and Accessed, if it's older) to now. It's exported
// for callers, such as the database façade, that mutate Parent/Children/
// Level directly during a structural move rather than through a setter.
func (g *Group) Touch() {
	g.touch()
}

// SetTitle sets the title and stamps modified.
func (g *Group) SetTitle(title string) {
	g.Title = title
	g.touch()
}

// SetIcon sets the icon and stamps modified.
func (g *Group) SetIcon(icon uint32) {
	g.Icon = icon
	g.touch()
}

// SetExpires sets the expiration timestamp and stamps modified.
func (g *Group) SetExpires(t time.Time) {
	g.Expires = t
	g.touch()
}
