package keepassdb

import (
	"time"

	"github.com/hozn/keepassdb/format"
	"github.com/hozn/keepassdb/internal/options"
	"github.com/hozn/keepassdb/model"
)

// GroupOption configures a group at creation time, after its defaults
// (icon 1, timestamps now, never-expires) are applied.
type GroupOption = options.Option[*model.Group]

// WithGroupIcon overrides the new group's icon (default 1).
func WithGroupIcon(icon uint32) GroupOption {
	return options.NoError(func(g *model.Group) { g.SetIcon(icon) })
}

// WithGroupExpires overrides the new group's expiration (default never).
func WithGroupExpires(t time.Time) GroupOption {
	return options.NoError(func(g *model.Group) { g.SetExpires(t) })
}

// EntryOption configures an entry at creation time, after its defaults
// (icon 1, timestamps now, never-expires, random UUID) are applied.
type EntryOption = options.Option[*model.Entry]

// WithEntryIcon overrides the new entry's icon (default 1).
func WithEntryIcon(icon uint32) EntryOption {
	return options.NoError(func(e *model.Entry) { e.SetIcon(icon) })
}

// WithEntryTitle sets the new entry's title.
func WithEntryTitle(title string) EntryOption {
	return options.NoError(func(e *model.Entry) { e.SetTitle(title) })
}

// WithEntryURL sets the new entry's URL.
func WithEntryURL(url string) EntryOption {
	return options.NoError(func(e *model.Entry) { e.SetURL(url) })
}

// WithEntryUsername sets the new entry's username.
func WithEntryUsername(username string) EntryOption {
	return options.NoError(func(e *model.Entry) { e.SetUsername(username) })
}

// WithEntryPassword sets the new entry's password.
func WithEntryPassword(password string) EntryOption {
	return options.NoError(func(e *model.Entry) { e.SetPassword(password) })
}

// WithEntryNotes sets the new entry's notes.
func WithEntryNotes(notes string) EntryOption {
	return options.NoError(func(e *model.Entry) { e.SetNotes(notes) })
}

// WithEntryExpires overrides the new entry's expiration (default never).
func WithEntryExpires(t time.Time) EntryOption {
	return options.NoError(func(e *model.Entry) { e.SetExpires(t) })
}

// WithEntryBinary attaches a binary payload and its description, stored
// exactly as given with no compression.
func WithEntryBinary(desc string, data []byte) EntryOption {
	return options.NoError(func(e *model.Entry) { e.SetBinary(desc, data) })
}

// WithEntryCompressedBinary attaches a binary payload, compressing it with
// the given scheme before it is stored and tagging desc so
// (*model.Entry).DecompressedBinary can reverse it later. Use
// format.CompressionNone to tag a payload the caller has already compressed
// upstream without running it through a codec here.
func WithEntryCompressedBinary(desc string, data []byte, ct format.CompressionType) EntryOption {
	return options.New(func(e *model.Entry) error { return e.SetCompressedBinary(desc, data, ct) })
}
