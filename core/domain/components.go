// ABOUTME: DateComponents domain model holds broken-down civil date/time fields
// ABOUTME: Provides calendar round-trip validation to reject impossible dates

package domain

import "time"

// DateComponents is a broken-down civil date/time without zone attachment.
// Absent time fields stay zero. Year may be any integer, including years
// below 100 or above 9999.
type DateComponents struct {
	Year        int
	Month       int // 1-12
	Day         int // 1-31
	Hour        int // 0-23
	Minute      int // 0-59
	Second      int // 0-59
	Millisecond int // 0-999
}

// Valid reports whether the components describe a real calendar moment.
// The (year, month, day) triple must survive normalization through the
// calendar unchanged, which rejects the likes of Feb 30 or month 13, and
// the time fields must each be in range.
func (c DateComponents) Valid() bool {
	if c.Month < 1 || c.Month > 12 || c.Day < 1 || c.Day > 31 {
		return false
	}
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 {
		return false
	}
	if c.Second < 0 || c.Second > 59 || c.Millisecond < 0 || c.Millisecond > 999 {
		return false
	}
	t := time.Date(c.Year, time.Month(c.Month), c.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == c.Year && int(t.Month()) == c.Month && t.Day() == c.Day
}

// UTCGuess interprets the components as if they were already UTC and
// returns the resulting instant in milliseconds since the Unix epoch.
// Zone correction happens in the instant converter.
func (c DateComponents) UTCGuess() int64 {
	t := time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second,
		c.Millisecond*int(time.Millisecond), time.UTC)
	return t.UnixMilli()
}
