package codec

import (
	"fmt"
	"time"

	"github.com/hozn/keepassdb/errs"
)

// DateSize is the wire width of the packed date codec.
const DateSize = 5

// Date is a naive (timezone-free) calendar instant at second resolution,
// the representation every timestamp field (created, modified, accessed,
// expires) uses in memory.
type Date struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// FromTime converts a time.Time to a Date by reading its calendar fields in
// whatever location it carries; no timezone conversion is performed.
func FromTime(t time.Time) Date {
	return Date{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// ToTime builds a time.Time in the local location from the date's calendar
// fields.
func (d Date) ToTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, time.Local)
}

// EncodeDate packs the date into 5 bytes per the KeePass 1.x bit layout.
func EncodeDate(d Date) []byte {
	b := make([]byte, DateSize)

	y, mo, da, h, mi, s := d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second

	b[0] = byte((y >> 6) & 0x3F)
	b[1] = byte(((y & 0x3F) << 2) | ((mo >> 2) & 0x03))
	b[2] = byte(((mo & 0x03) << 6) | ((da & 0x1F) << 1) | ((h >> 4) & 0x01))
	b[3] = byte(((h & 0x0F) << 4) | ((mi >> 2) & 0x0F))
	b[4] = byte(((mi & 0x03) << 6) | (s & 0x3F))

	return b
}

// DecodeDate unpacks a 5-byte packed date. It is the exact inverse of
// EncodeDate. A month outside 1-12, a day outside 1-31, an hour outside
// 0-23, or a minute or second outside 0-59 fails with errs.ErrParse; the day
// is not checked against the month's length (e.g. day 31 of February
// decodes); callers needing that should route the result through ToTime and
// compare round trips.
func DecodeDate(b []byte) (Date, error) {
	if len(b) != DateSize {
		return Date{}, fmt.Errorf("%w: date needs %d bytes, got %d", errs.ErrParse, DateSize, len(b))
	}

	year := (int(b[0]) << 6) | (int(b[1]) >> 2)
	month := ((int(b[1]) & 0x03) << 2) | (int(b[2]) >> 6)
	day := (int(b[2]) >> 1) & 0x1F
	hour := ((int(b[2]) & 0x01) << 4) | (int(b[3]) >> 4)
	minute := ((int(b[3]) & 0x0F) << 2) | (int(b[4]) >> 6)
	second := int(b[4]) & 0x3F

	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return Date{}, fmt.Errorf("%w: date field out of range: %04d-%02d-%02d %02d:%02d:%02d",
			errs.ErrParse, year, month, day, hour, minute, second)
	}

	return Date{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}, nil
}
