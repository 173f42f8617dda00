package model

import "time"

// NeverExpires is the sentinel value meaning "does not expire".
var NeverExpires = time.Date(2999, time.December, 28, 23, 59, 59, 0, time.Local)

// now returns the current instant truncated to second resolution, matching
// the precision every on-disk timestamp field is stored at.
func now() time.Time {
	t := time.Now().Local()

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}
