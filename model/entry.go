package model

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hozn/keepassdb/compress"
	"github.com/hozn/keepassdb/format"
)

// Entry is a single credential record owned by exactly one Group.
type Entry struct {
	UUID    string // lowercase hex, 32 characters (16 raw bytes)
	GroupID uint32
	Icon    uint32

	Title    string
	URL      string
	Username string
	Password string
	Notes    string

	Created  time.Time
	Modified time.Time
	Accessed time.Time
	Expires  time.Time

	BinaryDesc string
	Binary     []byte // nil means absent; present-but-empty is []byte{}

	Group *Group
}

// NewUUID generates a random entry UUID (RFC 4122 version 4), hex-encoded
// as the 32 lowercase characters the wire format expects.
func NewUUID() string {
	u := uuid.New()

	return hex.EncodeToString(u[:])
}

// NewEntry constructs an Entry owned by group: defaults created/modified/
// accessed to now, expires to NeverExpires, generates a random UUID, and
// sets group_id to the owning group's id.
func NewEntry(group *Group) *Entry {
	t := now()

	e := &Entry{
		UUID:     NewUUID(),
		Icon:     1,
		Created:  t,
		Modified: t,
		Accessed: t,
		Expires:  NeverExpires,
	}
	e.SetGroup(group)

	return e
}

// touch stamps Modified (and Accessed, if it's older) to now.
func (e *Entry) touch() {
	t := now()
	e.Modified = t
	if e.Accessed.Before(t) {
		e.Accessed = t
	}
}

// Touch stamps Modified (and Accessed, if it's older) to now. It's exported
// for callers, such as the database façade, that reassign GroupID directly
// during a structural move rather than through SetGroup.
func (e *Entry) Touch() {
	e.touch()
}

// SetGroup reassigns the entry's owning group and keeps GroupID in sync.
// It does not itself move the entry between Group.Entries slices; callers
// do that through the database façade so the flat entry list stays
// consistent.
func (e *Entry) SetGroup(group *Group) {
	e.Group = group
	if group != nil {
		e.GroupID = group.ID
	}
	e.touch()
}

func (e *Entry) SetTitle(title string) {
	e.Title = title
	e.touch()
}

func (e *Entry) SetIcon(icon uint32) {
	e.Icon = icon
	e.touch()
}

func (e *Entry) SetURL(url string) {
	e.URL = url
	e.touch()
}

func (e *Entry) SetUsername(username string) {
	e.Username = username
	e.touch()
}

func (e *Entry) SetPassword(password string) {
	e.Password = password
	e.touch()
}

func (e *Entry) SetNotes(notes string) {
	e.Notes = notes
	e.touch()
}

func (e *Entry) SetExpires(t time.Time) {
	e.Expires = t
	e.touch()
}

// SetBinary sets the binary attachment and its description, stamping
// modified. Passing nil data clears the attachment.
func (e *Entry) SetBinary(desc string, data []byte) {
	e.BinaryDesc = desc
	e.Binary = data
	e.touch()
}

// compressionTagPrefix separates a caller-supplied description from the
// compression scheme SetCompressedBinary records, so DecompressedBinary and
// Description can recover both halves from the single BinaryDesc field the
// wire format provides.
const compressionTagPrefix = "\x00compress:"

// SetCompressedBinary compresses data with the given scheme and stores the
// result as the binary attachment, tagging BinaryDesc so DecompressedBinary
// can reverse it later. ct = format.CompressionNone still tags the
// description, so callers can mix compressed and uncompressed attachments
// on the same database and let DecompressedBinary handle both uniformly.
func (e *Entry) SetCompressedBinary(desc string, data []byte, ct format.CompressionType) error {
	codec, err := compress.CreateCodec(ct, "entry binary attachment")
	if err != nil {
		return err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return fmt.Errorf("model: compressing entry binary: %w", err)
	}

	e.BinaryDesc = desc + compressionTagPrefix + ct.String()
	e.Binary = compressed
	e.touch()

	return nil
}

// DecompressedBinary returns the entry's binary attachment, decompressing
// it first if it was stored through SetCompressedBinary. An attachment set
// with plain SetBinary is returned unchanged.
func (e *Entry) DecompressedBinary() ([]byte, error) {
	_, tag, ok := splitCompressionTag(e.BinaryDesc)
	if !ok {
		return e.Binary, nil
	}

	ct, err := parseCompressionTag(tag)
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(ct, "entry binary attachment")
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(e.Binary)
	if err != nil {
		return nil, fmt.Errorf("model: decompressing entry binary: %w", err)
	}

	return data, nil
}

// Description returns BinaryDesc with any compression tag SetCompressedBinary
// recorded stripped back out, so callers see the description they supplied.
func (e *Entry) Description() string {
	desc, _, ok := splitCompressionTag(e.BinaryDesc)
	if !ok {
		return e.BinaryDesc
	}

	return desc
}

func splitCompressionTag(desc string) (plain, tag string, ok bool) {
	i := strings.Index(desc, compressionTagPrefix)
	if i < 0 {
		return desc, "", false
	}

	return desc[:i], desc[i+len(compressionTagPrefix):], true
}

func parseCompressionTag(tag string) (format.CompressionType, error) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		if ct.String() == tag {
			return ct, nil
		}
	}

	return 0, fmt.Errorf("model: unknown compression tag %q", tag)
}
