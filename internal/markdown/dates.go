package markdown

import "time"

// Date layouts used across the session format. ISO dates go in file names
// and frontmatter; the abbreviated-month form names daily notes; the
// display form appears in body headings. They are never interchangeable.
const (
	isoLayout       = "2006-01-02"
	dailyNoteLayout = "2006-Jan-02"
	displayLayout   = "Jan 2, 2006"
)

// ISODate formats a date as "2026-02-11".
func ISODate(d time.Time) string {
	return d.Format(isoLayout)
}

// DisplayDate formats a date as "Feb 11, 2026" for body headings.
func DisplayDate(d time.Time) string {
	return d.Format(displayLayout)
}

// ParseISODate parses a "2026-02-11" date string.
func ParseISODate(s string) (time.Time, bool) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateFromFileName extracts the date encoded in the first 10 characters of
// a session file name. Files without a parseable date prefix are excluded
// from history queries, not errors.
func DateFromFileName(name string) (time.Time, bool) {
	if len(name) <= 10 {
		return time.Time{}, false
	}
	return ParseISODate(name[:10])
}
