package timeutil

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	// LocalInputLayout is the timezone-naive layout used by edit forms.
	LocalInputLayout = "2006-01-02T15:04:05"
	// localInputShortLayout is accepted on input when seconds are omitted.
	localInputShortLayout = "2006-01-02T15:04"
)

// ISOToLocalInput renders an RFC 3339 instant as a timezone-naive local
// datetime string.
func ISOToLocalInput(iso string) (string, error) {
	return ISOToLocalInputIn(iso, time.Local)
}

// ISOToLocalInputIn is ISOToLocalInput for an explicit location.
func ISOToLocalInputIn(iso string, loc *time.Location) (string, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(iso))
	if err != nil {
		return "", errInvalidISO.Fmt(iso)
	}

	return FormatLocalInput(t, loc), nil
}

// FormatLocalInput renders t in loc using the local input layout.
func FormatLocalInput(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(LocalInputLayout)
}

// LocalInputToISO interprets a local datetime string in the local timezone
// and returns the instant as UTC RFC 3339. Sub-second precision is dropped.
// A wall time repeated by a DST fall-back maps to only one of its two
// instants, so the round trip through ISOToLocalInput is lossy in that hour.
func LocalInputToISO(s string) (string, error) {
	return LocalInputToISOIn(s, time.Local)
}

// LocalInputToISOIn is LocalInputToISO for an explicit location.
func LocalInputToISOIn(s string, loc *time.Location) (string, error) {
	t, err := ParseLocalInput(s, loc)
	if err != nil {
		return "", err
	}

	return t.UTC().Format(time.RFC3339), nil
}

// ParseLocalInput parses a local datetime string with or without seconds.
// Fractional seconds are truncated.
func ParseLocalInput(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range []string{LocalInputLayout, localInputShortLayout} {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
	}

	// values copied out of a full timestamp may still carry fractions
	if i := strings.IndexByte(s, '.'); i > 0 {
		t, err := time.ParseInLocation(LocalInputLayout, s[:i], loc)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, errInvalidLocalInput.Fmt(s)
}

// FromStr parses a human readable date such as "yesterday" or
// "2 weeks ago" relative to now. Dates without a zone are read in now's
// location.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		DefaultTimezone:     now.Location(),
		PreferredDateSource: dateparser.Past,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errInvalidDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}
