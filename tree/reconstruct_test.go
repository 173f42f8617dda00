package tree

import (
	"testing"

	"github.com/hozn/keepassdb/errs"
	"github.com/hozn/keepassdb/model"
	"github.com/stretchr/testify/require"
)

func levelGroup(id uint32, level int16) *model.Group {
	return &model.Group{ID: id, Title: "g", Level: level}
}

func TestReconstruct_SimpleHierarchy(t *testing.T) {
	// Internet(0) > A1(1) > A2(2), eMail(0)
	groups := []*model.Group{
		levelGroup(1, 0),
		levelGroup(2, 1),
		levelGroup(3, 2),
		levelGroup(4, 0),
	}
	groups[0].Title = "Internet"
	groups[1].Title = "A1"
	groups[2].Title = "A2"
	groups[3].Title = "eMail"

	root, err := Reconstruct(groups, nil)
	require.NoError(t, err)

	require.Len(t, root.Children, 2)
	require.Equal(t, "Internet", root.Children[0].Title)
	require.Equal(t, "eMail", root.Children[1].Title)
	require.Same(t, root, root.Children[0].Parent)
	require.Same(t, root, root.Children[1].Parent)

	internet := root.Children[0]
	require.Len(t, internet.Children, 1)
	require.Equal(t, "A1", internet.Children[0].Title)
	require.Same(t, internet, internet.Children[0].Parent)

	a1 := internet.Children[0]
	require.Len(t, a1.Children, 1)
	require.Equal(t, "A2", a1.Children[0].Title)
}

func TestReconstruct_Siblings(t *testing.T) {
	groups := []*model.Group{
		levelGroup(1, 0),
		levelGroup(2, 1),
		levelGroup(3, 1),
		levelGroup(4, 1),
	}

	root, err := Reconstruct(groups, nil)
	require.NoError(t, err)
	require.Len(t, root.Children[0].Children, 3)
}

func TestReconstruct_FirstGroupWrongLevel(t *testing.T) {
	groups := []*model.Group{levelGroup(1, 1)}

	_, err := Reconstruct(groups, nil)
	require.ErrorIs(t, err, errs.ErrParse)
}

func TestReconstruct_BindsEntries(t *testing.T) {
	groups := []*model.Group{levelGroup(1, 0), levelGroup(2, 0)}
	e1 := &model.Entry{UUID: "aa", GroupID: 1}
	e2 := &model.Entry{UUID: "bb", GroupID: 2}

	root, err := Reconstruct(groups, []*model.Entry{e1, e2})
	require.NoError(t, err)

	require.Same(t, root.Children[0], e1.Group)
	require.Same(t, root.Children[1], e2.Group)
	require.Equal(t, []*model.Entry{e1}, root.Children[0].Entries)
	require.Equal(t, []*model.Entry{e2}, root.Children[1].Entries)
}

func TestReconstruct_OrphanEntryFails(t *testing.T) {
	groups := []*model.Group{levelGroup(1, 0)}
	orphan := &model.Entry{UUID: "cc", GroupID: 999}

	_, err := Reconstruct(groups, []*model.Entry{orphan})
	require.ErrorIs(t, err, errs.ErrParse)
}

func TestReconstruct_EmptyDatabase(t *testing.T) {
	root, err := Reconstruct(nil, nil)
	require.NoError(t, err)
	require.True(t, root.IsRoot())
	require.Empty(t, root.Children)
}
