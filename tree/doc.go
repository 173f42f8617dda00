// Package tree derives the group hierarchy from the flat, level-tagged
// sequence parsed off disk, and flattens an edited hierarchy back into that
// same depth-first pre-order sequence before a save.
package tree
