package moment

import "time"

// notionTimeLayout is the instant representation the remote side stores.
const notionTimeLayout = "2006-01-02T15:04:05.000Z"

// ToNotionTime converts a local instant to the remote representation.
func ToNotionTime(t time.Time) string {
	return t.UTC().Format(notionTimeLayout)
}

// FromNotionTime parses a remote instant into local time. Date properties
// may be stored date-only; those parse as local midnight. The zero time is
// returned for anything unparsable.
func FromNotionTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local()
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t
	}
	return time.Time{}
}