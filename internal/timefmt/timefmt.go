// Package timefmt formats backend timestamps defensively. The API is not
// consistent about timestamp shapes, so every helper tolerates empty or
// malformed input and falls back to a placeholder instead of failing.
package timefmt

import (
	"strconv"
	"time"
)

// Layouts accepted from the backend, most specific first.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Parse returns the parsed time and true, or the zero time and false when the
// input is empty or matches no known layout.
func Parse(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Format renders s using the given layout, or fallback when s is unparseable.
func Format(s, layout, fallback string) string {
	t, ok := Parse(s)
	if !ok {
		return fallback
	}
	return t.Format(layout)
}

// Date renders a short human date, "Date TBD" when unknown.
func Date(s string) string {
	return Format(s, "Jan 2, 2006", "Date TBD")
}

// DateTime renders date and time, "Date TBD" when unknown.
func DateTime(s string) string {
	return Format(s, "Jan 2, 2006 15:04", "Date TBD")
}

// Ago renders a coarse relative age, "unknown time" when unparseable.
func Ago(s string) string {
	t, ok := Parse(s)
	if !ok {
		return "unknown time"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// IsUpcoming reports whether s parses to a time after now. Unparseable input
// is never upcoming.
func IsUpcoming(s string) bool {
	t, ok := Parse(s)
	return ok && t.After(time.Now())
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return strconv.Itoa(n) + " " + unit + "s ago"
}
